package authService

import (
	"context"

	"BlogGolang/internal/api/auth"
	authRepository "BlogGolang/internal/api/auth/repository"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *userDomainImpl) GetCurrentUser(c context.Context, caller entity.UserLoginData) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	user, err := repo.Users.GetByID(c, caller.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to get current user")
		return auth.UserResponse{}, err
	}

	return MakeUserResponse(user), nil
}

func (s *userDomainImpl) UpdateUser(c context.Context, caller entity.UserLoginData, req auth.UpdateUserRequest) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	user, err := repo.Users.GetByID(c, caller.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to get user for update")
		return auth.UserResponse{}, err
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Password != "" {
		hashed, err := s.bcryptUtils.HashPassword(req.Password)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to hash password")
			return auth.UserResponse{}, err
		}
		user.Password = hashed
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Website != "" {
		user.Website = req.Website
	}
	if req.Facebook != "" {
		user.Facebook = req.Facebook
	}
	if req.Instagram != "" {
		user.Instagram = req.Instagram
	}
	if req.X != "" {
		user.X = req.X
	}
	if req.Youtube != "" {
		user.Youtube = req.Youtube
	}
	if req.LinkedIn != "" {
		user.LinkedIn = req.LinkedIn
	}

	if err := repo.Users.UpdateUser(c, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to update user")
		return auth.UserResponse{}, err
	}

	updated, err := repo.Users.GetByID(c, caller.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load updated user")
		return auth.UserResponse{}, err
	}

	return MakeUserResponse(updated), nil
}

func (s *userDomainImpl) DeleteSelf(c context.Context, caller entity.UserLoginData) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Users.DeleteUser(c, caller.ID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to delete user")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    caller.ID,
	}).Info("User deleted own account")

	return nil
}

// requireAdmin loads the caller's stored record and checks its role.
// The token never carries the role so a tampered client cannot elevate
// itself.
func (s *userDomainImpl) requireAdmin(c context.Context, repo authRepository.Client, caller entity.UserLoginData) error {
	requestID := contextPkg.GetRequestID(c)

	user, err := repo.Users.GetByID(c, caller.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to load caller for admin check")
		return err
	}

	if !user.IsAdmin() {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    caller.ID,
		}).Warn("Non-admin attempted admin operation")
		return auth.ErrAdminOnly
	}

	return nil
}

func (s *userDomainImpl) GetAllUsers(c context.Context, caller entity.UserLoginData, limit, offset int) (auth.UsersListResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UsersListResponse{}, err
	}

	if err := s.requireAdmin(c, repo, caller); err != nil {
		return auth.UsersListResponse{}, err
	}

	users, err := repo.Users.GetAllUsers(c, limit, offset)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list users")
		return auth.UsersListResponse{}, err
	}

	total, err := repo.Users.CountUsers(c)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to count users")
		return auth.UsersListResponse{}, err
	}

	res := auth.UsersListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Users:  make([]auth.UserResponse, 0, len(users)),
	}
	for _, user := range users {
		res.Users = append(res.Users, MakeUserResponse(user))
	}

	return res, nil
}

func (s *userDomainImpl) GetUserByID(c context.Context, caller entity.UserLoginData, id string) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	if err := s.requireAdmin(c, repo, caller); err != nil {
		return auth.UserResponse{}, err
	}

	user, err := repo.Users.GetByID(c, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to get user by id")
		return auth.UserResponse{}, err
	}

	return MakeUserResponse(user), nil
}

func (s *userDomainImpl) DeleteUserByID(c context.Context, caller entity.UserLoginData, id string) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := s.requireAdmin(c, repo, caller); err != nil {
		return err
	}

	if err := repo.Users.DeleteUser(c, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to delete user by id")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    id,
	}).Info("User deleted by admin")

	return nil
}
