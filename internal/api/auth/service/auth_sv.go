package authService

import (
	"context"
	"errors"
	"time"

	"BlogGolang/internal/api/auth"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	jwtPkg "BlogGolang/pkg/jwt"

	"github.com/sirupsen/logrus"
)

const sessionDuration = 24 * time.Hour

func (s *authDomainImpl) Register(c context.Context, req auth.RegisterUserRequest) (auth.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.SessionResponse{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate user ID")
		return auth.SessionResponse{}, err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.SessionResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = entity.RoleUser
	}

	user := entity.User{
		ID:       id,
		Username: s.utils.NewUsername(),
		Email:    req.Email,
		Password: hashedPassword,
		Role:     role,
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		if errors.Is(err, auth.ErrUsernameAlreadyExists) {
			// generated handle collided, one retry with a fresh one
			user.Username = s.utils.NewUsername()
			err = repo.Users.CreateUser(c, user)
		}
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to create user")
			return auth.SessionResponse{}, err
		}
	}

	created, err := repo.Users.GetByID(c, user.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load created user")
		return auth.SessionResponse{}, err
	}

	token, expired, err := jwtPkg.Sign(MakeUserData(created), sessionDuration)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.SessionResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    created.ID,
	}).Info("User registered")

	return auth.SessionResponse{
		AccessToken: token,
		ExpiresAt:   expired,
		User:        MakeUserResponse(created),
	}, nil
}

func (s *authDomainImpl) Login(c context.Context, req auth.LoginUserRequest) (auth.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.SessionResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to get user by email")
		return auth.SessionResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Password comparison failed")
		return auth.SessionResponse{}, auth.ErrInvalidPassword
	}

	token, expired, err := jwtPkg.Sign(MakeUserData(user), sessionDuration)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.SessionResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("Token created")

	return auth.SessionResponse{
		AccessToken: token,
		ExpiresAt:   expired,
		User:        MakeUserResponse(user),
	}, nil
}

// Logout parks the presented token on the denylist until it would have
// expired on its own.
func (s *authDomainImpl) Logout(c context.Context, token string) error {
	requestID := contextPkg.GetRequestID(c)

	claims, err := jwtPkg.VerifyToken(token)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Logout with unverifiable token")
		return auth.ErrorInvalidToken
	}

	if err := s.redisServer.RevokeToken(c, token, jwtPkg.TokenExpiry(claims)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to revoke token")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("User logged out")

	return nil
}
