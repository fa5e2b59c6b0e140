package textgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alimikegami/velvet-storefront/config"
	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

const (
	DescriptionNotConfigured = "API Key not configured. Please add your Gemini API Key to use AI features."
	DescriptionFailed        = "Error generating description. Please try again."
	DescriptionEmpty         = "Could not generate description."
	TaglineFallback          = "Elevate Your Style."

	DefaultBaseURL = "https://generativelanguage.googleapis.com"
)

const descriptionPrompt = `Write a compelling, luxurious, and SEO-friendly product description (approx 40-60 words) for a e-commerce item.
Product Name: %s
Category: %s
Keywords/Vibe: %s
Tone: Sophisticated, modern, appealing to fashion-conscious women.
Output: Just the description text, no quotes.`

const taglinePrompt = "Generate a short, punchy, 5-word luxury fashion tagline for a bag and accessory store."

var errEmptyCompletion = errors.New("empty completion")

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type GeminiClient struct {
	apiKey       string
	model        string
	taglineModel string
	baseURL      string
	cb           *gobreaker.CircuitBreaker[[]byte]
}

func CreateGeminiClient(conf config.GeminiConfig, cb *gobreaker.CircuitBreaker[[]byte]) *GeminiClient {
	return &GeminiClient{
		apiKey:       conf.APIKey,
		model:        conf.Model,
		taglineModel: conf.TaglineModel,
		baseURL:      DefaultBaseURL,
		cb:           cb,
	}
}

// WithBaseURL points the client at another endpoint, used by tests.
func (c *GeminiClient) WithBaseURL(baseURL string) *GeminiClient {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

func (c *GeminiClient) GenerateDescription(ctx context.Context, name, category, keywords string) domain.GeneratedText {
	if c.apiKey == "" {
		return domain.GeneratedText{Text: DescriptionNotConfigured, Fallback: true}
	}

	text, err := c.generate(ctx, c.model, fmt.Sprintf(descriptionPrompt, name, category, keywords))
	if errors.Is(err, errEmptyCompletion) {
		return domain.GeneratedText{Text: DescriptionEmpty, Fallback: true}
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GenerateDescription").Msg("")
		return domain.GeneratedText{Text: DescriptionFailed, Fallback: true}
	}

	return domain.GeneratedText{Text: text}
}

func (c *GeminiClient) GenerateTagline(ctx context.Context) domain.GeneratedText {
	if c.apiKey == "" {
		return domain.GeneratedText{Text: TaglineFallback, Fallback: true}
	}

	text, err := c.generate(ctx, c.taglineModel, taglinePrompt)
	if err == nil {
		text = strings.TrimSpace(strings.ReplaceAll(text, `"`, ""))
	}
	if err != nil || text == "" {
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "GenerateTagline").Msg("")
		}
		return domain.GeneratedText{Text: TaglineFallback, Fallback: true}
	}

	return domain.GeneratedText{Text: text}
}

func (c *GeminiClient) generate(ctx context.Context, model, prompt string) (string, error) {
	reqBody, err := json.Marshal(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}})
	if err != nil {
		return "", fmt.Errorf("error marshalling generate request: %w", err)
	}

	body, err := c.cb.Execute(func() ([]byte, error) {
		status, body, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:    fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, model),
			Method: http.MethodPost,
			Body:   reqBody,
			Headers: map[string]string{
				"Content-Type":   "application/json",
				"x-goog-api-key": c.apiKey,
			},
			Timeout: 60 * time.Second,
		})
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("generateContent returned status %d", status)
		}
		return body, nil
	})
	if err != nil {
		return "", err
	}

	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("error unmarshalling generate response: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
		break
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errEmptyCompletion
	}

	return text, nil
}
