package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"html"
	"math/big"
	"strings"
	"time"

	"github.com/alimikegami/velvet-storefront/config"
	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/internal/repository"
	pkgdto "github.com/alimikegami/velvet-storefront/pkg/dto"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/alimikegami/velvet-storefront/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const registrationTTL = 10 * time.Minute

type UserServiceImpl struct {
	repo       repository.UserRepository
	siteConfig repository.SiteConfigRepository
	mailer     Mailer
	config     config.Config
}

func CreateUserService(repo repository.UserRepository, siteConfig repository.SiteConfigRepository, mailer Mailer, config config.Config) UserService {
	return &UserServiceImpl{repo: repo, siteConfig: siteConfig, mailer: mailer, config: config}
}

// Register creates a customer account and signs it in. With email verification
// enabled it parks the account until VerifyRegistration confirms the emailed code.
func (s *UserServiceImpl) Register(ctx context.Context, req dto.UserRequest) (resp dto.RegisterResponse, err error) {
	if err = domain.ValidateRegistration(req.Name, req.Email, req.Password); err != nil {
		return resp, err
	}

	if _, err = s.repo.GetUserByEmail(ctx, req.Email); err == nil {
		return resp, errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return resp, err
	}

	if !s.config.RegistrationOTPEnabled {
		user, err := s.addUser(ctx, req.Name, req.Email, string(hash), domain.RoleCustomer)
		if err != nil {
			return resp, err
		}

		session, err := s.createSession(user)
		if err != nil {
			return resp, err
		}

		return dto.RegisterResponse{Session: &session}, nil
	}

	code, err := generateOTP()
	if err != nil {
		return resp, err
	}

	pending := domain.PendingRegistration{
		ID:             ulid.Make().String(),
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: string(hash),
		Code:           code,
		ExpiresAt:      time.Now().Add(registrationTTL).UnixMilli(),
	}

	if err = s.repo.AddPendingRegistration(ctx, pending); err != nil {
		return resp, err
	}

	s.sendVerificationCode(ctx, pending)

	return dto.RegisterResponse{VerificationRequired: true, PendingID: pending.ID, ExpiresAt: pending.ExpiresAt}, nil
}

func (s *UserServiceImpl) sendVerificationCode(ctx context.Context, pending domain.PendingRegistration) {
	conf, err := s.siteConfig.GetSiteConfig(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Register").Msg("")
		return
	}

	body := fmt.Sprintf("<p>Hi %s,</p><p>Your %s verification code is <strong>%s</strong>. It expires in %d minutes.</p>",
		html.EscapeString(pending.Name), html.EscapeString(conf.HeaderTitle), pending.Code, int(registrationTTL.Minutes()))

	err = s.mailer.Send(ctx, conf.SMTP, pending.Email, "Verify your email", body)
	if err != nil {
		event := log.Ctx(ctx).Warn().Err(err).Str("component", "Register").Str("pending_id", pending.ID)
		if s.config.Environment != "production" {
			event = event.Str("code", pending.Code)
		}
		event.Msg("verification email not sent")
	}
}

func (s *UserServiceImpl) VerifyRegistration(ctx context.Context, req dto.VerifyRegistrationRequest) (resp dto.LoginResponse, err error) {
	pending, err := s.repo.GetPendingRegistration(ctx, req.PendingID)
	if err != nil {
		return resp, err
	}

	if pending.Expired(time.Now().UnixMilli()) {
		s.repo.DeletePendingRegistration(ctx, pending.ID)
		return resp, errs.ErrRegistrationExpired
	}

	if subtle.ConstantTimeCompare([]byte(pending.Code), []byte(strings.TrimSpace(req.Code))) != 1 {
		return resp, errs.ErrInvalidOTP
	}

	user, err := s.addUser(ctx, pending.Name, pending.Email, pending.HashedPassword, domain.RoleCustomer)
	if err != nil {
		return resp, err
	}

	if err = s.repo.DeletePendingRegistration(ctx, pending.ID); err != nil {
		return resp, err
	}

	return s.createSession(user)
}

// Login looks the account up by exact email. Unknown email and wrong password
// produce the same error so callers cannot probe for accounts.
func (s *UserServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return resp, errs.ErrInvalidCredentialsEmail
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password))
	if err != nil {
		log.Ctx(ctx).Info().Str("component", "Login").Msg("password mismatch")
		return resp, errs.ErrInvalidCredentialsEmail
	}

	return s.createSession(user)
}

func (s *UserServiceImpl) GetUsers(ctx context.Context, filter pkgdto.Filter) (resp pkgdto.PaginationResponse, err error) {
	users, total, err := s.repo.GetUsers(ctx, filter)
	if err != nil {
		return resp, fmt.Errorf("failed to get users: %w", err)
	}

	records := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		records = append(records, dto.NewUserResponse(u))
	}

	resp.Records = records
	resp.Metadata = pkgdto.PaginationMetadata{
		TotalCount: uint64(total),
		Page:       uint64(filter.Page),
		Limit:      filter.Limit,
	}

	return resp, nil
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, req dto.UserRequest) (resp dto.UserResponse, err error) {
	if err = domain.ValidateRegistration(req.Name, req.Email, req.Password); err != nil {
		return resp, err
	}

	role := domain.Role(req.Role)
	if !role.IsValid() {
		return resp, &domain.ValidationError{Err: errs.ErrClient, Fields: []domain.FieldError{{Field: "role", Tag: "oneof=SUPER_ADMIN SHOP_ADMIN CUSTOMER"}}}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return resp, err
	}

	user, err := s.addUser(ctx, req.Name, req.Email, string(hash), role)
	if err != nil {
		return resp, err
	}

	return dto.NewUserResponse(user), nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, actorID string, id string) (err error) {
	if actorID == id {
		return errs.ErrCannotDeleteSelf
	}

	target, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	if target.Role == domain.RoleSuperAdmin {
		users, err := s.repo.GetAllUsers(ctx)
		if err != nil {
			return err
		}
		admins := 0
		for _, u := range users {
			if u.Role == domain.RoleSuperAdmin {
				admins++
			}
		}
		if admins <= 1 {
			return errs.ErrConflict
		}
	}

	return s.repo.DeleteUser(ctx, id)
}

// SeedAccounts creates bootstrap accounts that do not exist yet.
func (s *UserServiceImpl) SeedAccounts(ctx context.Context, accounts []domain.SeedAccount) (err error) {
	for _, acc := range accounts {
		if _, err := s.repo.GetUserByEmail(ctx, acc.Email); err == nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		if _, err = s.addUser(ctx, acc.Name, acc.Email, string(hash), acc.Role); err != nil {
			return err
		}
	}

	return nil
}

func (s *UserServiceImpl) PurgeExpiredRegistrations() {
	deleted, err := s.repo.DeleteExpiredPendingRegistrations(context.Background(), time.Now().UnixMilli())
	if err != nil {
		log.Error().Err(err).Str("component", "PurgeExpiredRegistrations").Msg("")
		return
	}

	if deleted > 0 {
		log.Info().Str("component", "PurgeExpiredRegistrations").Int("deleted", deleted).Msg("expired registrations purged")
	}
}

func (s *UserServiceImpl) addUser(ctx context.Context, name, email, hash string, role domain.Role) (domain.User, error) {
	user := domain.User{
		ID:             ulid.Make().String(),
		Name:           name,
		Email:          email,
		HashedPassword: hash,
		Role:           role,
		CreatedAt:      time.Now().UnixMilli(),
	}

	if err := s.repo.AddUser(ctx, user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (s *UserServiceImpl) createSession(user domain.User) (dto.LoginResponse, error) {
	token, err := utils.CreateJWTToken(user.ID, user.Name, user.Email, string(user.Role), s.config.JWTSecret, s.config.JWTKid)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	return dto.LoginResponse{
		Token:       token,
		User:        dto.NewUserResponse(user),
		AllowedTabs: domain.AllowedTabs(user.Role),
	}, nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
