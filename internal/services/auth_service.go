package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/corebank/backend/internal/audit"
	"github.com/corebank/backend/internal/config"
	"github.com/corebank/backend/internal/models"
	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
)

const loginFailuresKeyPrefix = "auth:login_failures:"

type AuthService struct {
	db     *sql.DB
	redis  *redis.Client
	tokens *TokenService
	audit  *audit.AuditLogger
	cfg    config.AuthConfig
}

// NewAuthService wires the identity service. redisClient may be nil, which
// disables login throttling.
func NewAuthService(db *sql.DB, redisClient *redis.Client, tokens *TokenService, cfg config.AuthConfig, auditLogger *audit.AuditLogger) *AuthService {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		db:     db,
		redis:  redisClient,
		tokens: tokens,
		audit:  auditLogger,
		cfg:    cfg,
	}
}

const minUsernameLength = 3

func normalizeRole(role string) string {
	role = strings.ToUpper(strings.TrimSpace(role))
	if role == "" {
		return models.RoleCustomer
	}
	return role
}

// Register creates a customer and links it to its role, creating the role
// on first use. It returns the stored username and role.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (string, string, error) {
	username := strings.TrimSpace(req.Username)
	if utf8.RuneCountInString(username) < minUsernameLength {
		return "", "", &DomainError{
			Kind:    ErrValidation,
			Message: "Validation failed",
			Details: map[string]string{"username": fmt.Sprintf("Username must have at least %d non-blank characters", minUsernameLength)},
		}
	}
	role := normalizeRole(req.Role)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", "", ValidationError("Password is too long")
		}
		return "", "", fmt.Errorf("hash password: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", "", fmt.Errorf("begin register: %w", err)
	}
	defer tx.Rollback()

	var taken bool
	if err := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM customers WHERE username = $1)", username).Scan(&taken); err != nil {
		return "", "", fmt.Errorf("check username: %w", err)
	}
	if taken {
		return "", "", ConflictError("Username already taken!")
	}

	var customerID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO customers (username, password, full_name, email, phone_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		username, string(hashed), req.FullName, strings.ToLower(req.Email), req.PhoneNumber, time.Now().UTC()).Scan(&customerID)
	if err != nil {
		if isUniqueViolation(err) {
			return "", "", ConflictError("Username already taken!")
		}
		return "", "", fmt.Errorf("insert customer: %w", err)
	}

	var roleID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO roles (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`, role).Scan(&roleID)
	if err != nil {
		return "", "", fmt.Errorf("resolve role %s: %w", role, err)
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO customer_roles (customer_id, role_id) VALUES ($1, $2)", customerID, roleID); err != nil {
		return "", "", fmt.Errorf("link role: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", "", fmt.Errorf("commit register: %w", err)
	}

	log.Printf("[AUTH] Customer registered - ID: %d, Username: %s, Role: %s", customerID, username, role)
	s.audit.LogAuth("REGISTER", username, audit.StatusSuccess, role)
	return username, role, nil
}

// Login checks credentials and issues a token. Unknown users and wrong
// passwords produce the same Unauthorized error.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)

	if err := s.checkThrottle(ctx, username); err != nil {
		s.audit.LogAuth("LOGIN", username, audit.StatusRejected, "too many failed attempts")
		return nil, err
	}

	var customerID int64
	var hashed string
	err := s.db.QueryRowContext(ctx, "SELECT id, password FROM customers WHERE username = $1", username).Scan(&customerID, &hashed)
	if errors.Is(err, sql.ErrNoRows) {
		log.Printf("[AUTH] Login failed - unknown username: %s", username)
		return nil, s.loginFailed(ctx, username)
	}
	if err != nil {
		return nil, fmt.Errorf("load customer: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(req.Password)); err != nil {
		log.Printf("[AUTH] Login failed - invalid password for: %s", username)
		return nil, s.loginFailed(ctx, username)
	}

	roles, err := customerRoles(ctx, s.db, customerID)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(username, roles)
	if err != nil {
		return nil, err
	}

	s.clearFailures(ctx, username)
	log.Printf("[AUTH] Login successful for customer %d", customerID)
	s.audit.LogAuth("LOGIN", username, audit.StatusSuccess, "")

	return &models.LoginResponse{
		ID:       customerID,
		Token:    token,
		Username: username,
		Roles:    roles,
	}, nil
}

func (s *AuthService) ListRoles(ctx context.Context) ([]models.Role, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM roles ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	roles := []models.Role{}
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func customerRoles(ctx context.Context, q queryer, customerID int64) ([]string, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT r.name FROM roles r
		JOIN customer_roles cr ON cr.role_id = r.id
		WHERE cr.customer_id = $1
		ORDER BY r.name`, customerID)
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	defer rows.Close()

	roles := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, name)
	}
	return roles, rows.Err()
}

func (s *AuthService) throttled() bool {
	return s.redis != nil && s.cfg.MaxFailedLogins > 0
}

// checkThrottle fails open when Redis errors.
func (s *AuthService) checkThrottle(ctx context.Context, username string) error {
	if !s.throttled() {
		return nil
	}

	count, err := s.redis.Get(ctx, loginFailuresKeyPrefix+username).Int()
	if err != nil && err != redis.Nil {
		log.Printf("[AUTH] Throttle lookup failed for %s: %v", username, err)
		return nil
	}

	if count >= s.cfg.MaxFailedLogins {
		log.Printf("[AUTH] Login throttled for %s after %d failures", username, count)
		return TooManyAttemptsError("Too many failed login attempts, try again later")
	}
	return nil
}

func (s *AuthService) loginFailed(ctx context.Context, username string) error {
	s.audit.LogAuth("LOGIN", username, audit.StatusFailed, "invalid credentials")

	if s.throttled() {
		key := loginFailuresKeyPrefix + username
		pipe := s.redis.Pipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, s.cfg.LockoutWindow)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Printf("[AUTH] Failed to record login failure for %s: %v", username, err)
		}
	}

	return UnauthorizedError("Invalid username or password")
}

func (s *AuthService) clearFailures(ctx context.Context, username string) {
	if !s.throttled() {
		return
	}
	if err := s.redis.Del(ctx, loginFailuresKeyPrefix+username).Err(); err != nil {
		log.Printf("[AUTH] Failed to clear login failures for %s: %v", username, err)
	}
}
