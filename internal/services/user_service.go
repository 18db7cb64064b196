package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"

	"jobly/internal/apperrors"
	"jobly/internal/auth"
	"jobly/internal/database"
	"jobly/internal/dtos"
	"jobly/internal/models"
)

type UserService struct {
	DB         database.Querier
	Secret     string
	BcryptCost int
	TokenTTL   time.Duration
}

func NewUserService(db database.Querier, secret string, bcryptCost int, tokenTTL time.Duration) *UserService {
	return &UserService{DB: db, Secret: secret, BcryptCost: bcryptCost, TokenTTL: tokenTTL}
}

// All returns the public projection of every user.
func (s *UserService) All(ctx context.Context) ([]models.PublicUser, error) {
	rows, err := s.DB.Query(ctx,
		`SELECT username, first_name, last_name, email, photo_url
		 FROM users ORDER BY last_name, first_name`)
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	defer rows.Close()

	users := []models.PublicUser{}
	for rows.Next() {
		var u models.PublicUser
		if err := rows.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.PhotoURL); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Create registers a user and issues a token for the new identity.
func (s *UserService) Create(ctx context.Context, req dtos.UserCreateRequest) (models.PublicUser, string, error) {
	hashed, err := auth.HashPassword(req.Password, s.BcryptCost)
	if err != nil {
		return models.PublicUser{}, "", err
	}

	photoURL := req.PhotoURL
	if photoURL == "" {
		photoURL = models.DefaultPhotoURL
	}

	row := s.DB.QueryRow(ctx,
		`INSERT INTO users (username, password, first_name, last_name, email, photo_url, is_admin)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING username, password, first_name, last_name, email, photo_url, is_admin`,
		req.Username, hashed, req.FirstName, req.LastName, req.Email, photoURL, req.IsAdmin)

	var u models.User
	if err := row.Scan(&u.Username, &u.Password, &u.FirstName, &u.LastName, &u.Email, &u.PhotoURL, &u.IsAdmin); err != nil {
		return models.PublicUser{}, "", apperrors.FromDB(err)
	}

	token, err := auth.Sign(s.Secret, u.Username, u.IsAdmin, s.TokenTTL)
	if err != nil {
		return models.PublicUser{}, "", err
	}
	return u.Public(), token, nil
}

func (s *UserService) Get(ctx context.Context, username string) (models.PublicUser, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT username, first_name, last_name, email, photo_url FROM users WHERE username=$1`,
		username)

	var u models.PublicUser
	if err := row.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.PhotoURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.PublicUser{}, apperrors.NotFound("Could not find user: %s", username)
		}
		return models.PublicUser{}, apperrors.FromDB(err)
	}
	return u, nil
}

// getWithSecrets loads the full row, password hash and admin flag included.
// Only the login path needs it.
func (s *UserService) getWithSecrets(ctx context.Context, username string) (models.User, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT username, password, first_name, last_name, email, photo_url, is_admin
		 FROM users WHERE username=$1`,
		username)

	var u models.User
	if err := row.Scan(&u.Username, &u.Password, &u.FirstName, &u.LastName, &u.Email, &u.PhotoURL, &u.IsAdmin); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, apperrors.NotFound("Could not find user: %s", username)
		}
		return models.User{}, apperrors.FromDB(err)
	}
	return u, nil
}

// Update writes a subset of user columns. A new password is re-hashed before
// it reaches the builder; the response never includes the hash or admin flag.
func (s *UserService) Update(ctx context.Context, username string, fields map[string]any) (models.PublicUser, error) {
	picked, err := pickFields(fields, "first_name", "last_name", "email", "photo_url", "password")
	if err != nil {
		return models.PublicUser{}, err
	}

	if raw, ok := picked["password"]; ok {
		password, ok := raw.(string)
		if !ok || password == "" {
			return models.PublicUser{}, apperrors.Validation([]string{"password must be a non-empty string"})
		}
		hashed, err := auth.HashPassword(password, s.BcryptCost)
		if err != nil {
			return models.PublicUser{}, err
		}
		picked["password"] = hashed
	}

	query, values := database.BuildUpdate("users", picked, "username", username)
	row := s.DB.QueryRow(ctx, query, values...)

	var u models.User
	if err := row.Scan(&u.Username, &u.Password, &u.FirstName, &u.LastName, &u.Email, &u.PhotoURL, &u.IsAdmin); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.PublicUser{}, apperrors.NotFound("Could not find user: %s", username)
		}
		return models.PublicUser{}, apperrors.FromDB(err)
	}
	return u.Public(), nil
}

func (s *UserService) Remove(ctx context.Context, username string) error {
	query, id, err := database.BuildDelete("users", "username", username)
	if err != nil {
		return err
	}

	var u models.User
	row := s.DB.QueryRow(ctx, query, id)
	if err := row.Scan(&u.Username, &u.Password, &u.FirstName, &u.LastName, &u.Email, &u.PhotoURL, &u.IsAdmin); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("Could not find user: %s", username)
		}
		return apperrors.FromDB(err)
	}
	return nil
}

// Authenticate exchanges credentials for a signed token. Unknown usernames
// and wrong passwords both come back as a plain Unauthorized.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (string, error) {
	u, err := s.getWithSecrets(ctx, username)
	if err != nil {
		if apperrors.Status(err) == http.StatusNotFound {
			return "", apperrors.Unauthorized()
		}
		return "", err
	}
	if !auth.CheckPassword(u.Password, password) {
		return "", apperrors.Unauthorized()
	}
	return auth.Sign(s.Secret, u.Username, u.IsAdmin, s.TokenTTL)
}
