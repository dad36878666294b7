package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name         string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		created      bool
		writerErr    error
		jwtErr       error
		wantToken    string
		wantID       int64
		wantErr      error
	}{
		{
			name:      "successful registration",
			email:     " Alice@Example.com ",
			password:  "pass123",
			created:   true,
			wantToken: "token-1",
			wantID:    1,
		},
		{
			name:     "missing password",
			email:    "alice@example.com",
			password: "",
			wantErr:  services.ErrInvalidInput,
		},
		{
			name:     "missing email",
			email:    "  ",
			password: "pass",
			wantErr:  services.ErrInvalidInput,
		},
		{
			name:         "user already exists",
			email:        "bob@example.com",
			password:     "pass123",
			existingUser: &models.UserDB{UserID: 2},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			email:     "carol@example.com",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
		{
			name:     "concurrent registration wins",
			email:    "dan@example.com",
			password: "pass123",
			created:  false,
			wantErr:  services.ErrUserAlreadyExists,
		},
		{
			name:     "jwt error",
			email:    "fay@example.com",
			password: "pass123",
			created:  true,
			jwtErr:   errors.New("sign error"),
			wantErr:  errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validInput := !errors.Is(tt.wantErr, services.ErrInvalidInput)
			if validInput {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), gomock.Any()).
					Return(tt.existingUser, tt.readerErr)
			}

			if validInput && tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, email, hash string) (int64, bool, error) {
						assert.NotEqual(t, tt.password, hash)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
						if !tt.created {
							return 0, false, tt.writerErr
						}
						return 1, true, nil
					})
				if tt.created {
					mockJWT.EXPECT().Generate(gomock.Any(), int64(1)).Return(tt.wantToken, tt.jwtErr)
				}
			}

			token, id, err := svc.Register(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, services.ErrInvalidInput) || errors.Is(tt.wantErr, services.ErrUserAlreadyExists) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
	mockWriter.EXPECT().Save(gomock.Any(), "alice@example.com", gomock.Any()).Return(int64(5), true, nil)
	mockJWT.EXPECT().Generate(gomock.Any(), int64(5)).Return("tok", nil)

	token, id, err := svc.Register(context.Background(), "  ALICE@example.com", "pw")
	assert.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, int64(5), id)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := &models.UserDB{UserID: 7, Email: "alice@example.com", PasswordHash: string(hashed)}

	tests := []struct {
		name      string
		email     string
		loginPass string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		wantToken string
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			loginPass: password,
			user:      user,
			wantToken: "token123",
		},
		{
			name:      "unknown email",
			email:     "ghost@example.com",
			loginPass: password,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			email:     "alice@example.com",
			loginPass: "nope",
			user:      user,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "alice@example.com",
			loginPass: password,
			readerErr: errors.New("db down"),
			wantErr:   errors.New("db down"),
		},
		{
			name:      "jwt error",
			email:     "alice@example.com",
			loginPass: password,
			user:      user,
			jwtErr:    errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
		{
			name:    "missing fields",
			email:   "",
			wantErr: services.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.wantErr, services.ErrInvalidInput) {
				mockReader.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(tt.user, tt.readerErr)
			}
			if tt.user != nil && tt.loginPass == password {
				mockJWT.EXPECT().Generate(gomock.Any(), user.UserID).Return(tt.wantToken, tt.jwtErr)
			}

			token, id, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.ErrorContains(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, user.UserID, id)
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl))

	mockReader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.UserDB{UserID: 1, Email: "a@b.c"}, nil)
	user, err := svc.Me(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "a@b.c", user.Email)

	mockReader.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, nil)
	_, err = svc.Me(context.Background(), 2)
	assert.ErrorIs(t, err, services.ErrUserDoesNotExist)

	mockReader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, errors.New("db down"))
	_, err = svc.Me(context.Background(), 3)
	assert.EqualError(t, err, "db down")
}
