package authService

import (
	"context"

	"BlogGolang/internal/api/auth"
	authRepository "BlogGolang/internal/api/auth/repository"
	"BlogGolang/internal/entity"
	"BlogGolang/pkg/bcrypt"
	"BlogGolang/pkg/redis"
	"BlogGolang/pkg/utils"

	"github.com/sirupsen/logrus"
)

type AuthService interface {
	Auth() AuthDomain
	User() UserDomain
	GetRepository() authRepository.Repository
}

type AuthDomain interface {
	Register(c context.Context, req auth.RegisterUserRequest) (auth.SessionResponse, error)
	Login(c context.Context, req auth.LoginUserRequest) (auth.SessionResponse, error)
	Logout(c context.Context, token string) error
}

type UserDomain interface {
	GetCurrentUser(c context.Context, caller entity.UserLoginData) (auth.UserResponse, error)
	UpdateUser(c context.Context, caller entity.UserLoginData, req auth.UpdateUserRequest) (auth.UserResponse, error)
	DeleteSelf(c context.Context, caller entity.UserLoginData) error
	GetAllUsers(c context.Context, caller entity.UserLoginData, limit, offset int) (auth.UsersListResponse, error)
	GetUserByID(c context.Context, caller entity.UserLoginData, id string) (auth.UserResponse, error)
	DeleteUserByID(c context.Context, caller entity.UserLoginData, id string) error
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	redisServer    redis.IRedis
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils

	authDomain AuthDomain
	userDomain UserDomain
}

func (a *authService) Auth() AuthDomain {
	return a.authDomain
}

func (a *authService) User() UserDomain {
	return a.userDomain
}

func (a *authService) GetRepository() authRepository.Repository {
	return a.authRepository
}

type authDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	redisServer redis.IRedis
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

type userDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
}

func New(log *logrus.Logger,
	authRepo authRepository.Repository,
	redisServer redis.IRedis,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) AuthService {
	return &authService{
		log:            log,
		authRepository: authRepo,
		redisServer:    redisServer,
		bcryptUtils:    bcryptUtils,
		utils:          utils,

		authDomain: &authDomainImpl{log: log, repo: authRepo, redisServer: redisServer, bcryptUtils: bcryptUtils, utils: utils},
		userDomain: &userDomainImpl{log: log, repo: authRepo, bcryptUtils: bcryptUtils},
	}
}
