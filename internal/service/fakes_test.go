package service

import (
	"context"
	"sync"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/repository"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
	return nil
}

func (p *recordingPublisher) Events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, settings domain.SMTPSettings, to string, subject string, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (m *recordingMailer) Sent() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sent...)
}

type memoryDocumentStore struct {
	mu     sync.Mutex
	docs   map[string][]byte
	getErr error
	putErr error
	opened int
	closed int
}

func newMemoryDocumentStore() *memoryDocumentStore {
	return &memoryDocumentStore{docs: map[string][]byte{}}
}

func (m *memoryDocumentStore) factory() repository.DocumentRepositoryFactory {
	return func(ctx context.Context, creds domain.StoreCredentials) (repository.DocumentRepository, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.opened++
		return m, nil
	}
}

func (m *memoryDocumentStore) GetDocument(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	doc, ok := m.docs[key]
	if !ok {
		return nil, errs.ErrDocumentNotFound
	}
	return doc, nil
}

func (m *memoryDocumentStore) UpsertDocument(ctx context.Context, key string, doc []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.docs[key] = doc
	return nil
}

func (m *memoryDocumentStore) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed++
	return nil
}

type memoryCredentials struct {
	creds domain.StoreCredentials
}

func (m *memoryCredentials) GetCredentials(ctx context.Context) (domain.StoreCredentials, error) {
	return m.creds, nil
}

func (m *memoryCredentials) SaveCredentials(ctx context.Context, data domain.StoreCredentials) error {
	m.creds = data
	return nil
}

type cannedGenerator struct {
	out domain.GeneratedText
}

func (g cannedGenerator) GenerateDescription(ctx context.Context, name, category, keywords string) domain.GeneratedText {
	return g.out
}

func (g cannedGenerator) GenerateTagline(ctx context.Context) domain.GeneratedText {
	return g.out
}
