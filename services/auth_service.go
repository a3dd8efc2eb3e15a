package services

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/configs"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/apperr"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/repository"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

type AuthService struct {
	Repo *repository.UserRepository
	Cfg  *configs.Config
}

func NewAuthService(repo *repository.UserRepository, cfg *configs.Config) *AuthService {
	return &AuthService{Repo: repo, Cfg: cfg}
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRes struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// Login checks credentials and issues a token carrying the canonical
// branch, so no downstream code ever re-resolves it.
func (s *AuthService) Login(req *LoginReq) (*LoginRes, error) {
	user, err := s.Repo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperr.Forbidden("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Forbidden("invalid credentials")
	}

	var branchID uint
	var branchName string
	if user.BranchID != nil {
		branchID = *user.BranchID
		if user.Branch != nil {
			branchName = user.Branch.Name
		}
	}
	token, err := utils.GenerateToken(user.ID, user.Role, branchID, branchName, s.Cfg.JWTSecret, s.Cfg.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &LoginRes{Token: token, User: *user}, nil
}

type RegisterReq struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role" binding:"required,oneof=admin manager kitchen_staff"`
	BranchID  *uint  `json:"branchId"`
}

// Register creates a staff account. Admin only; non-admin roles need a
// branch assignment.
func (s *AuthService) Register(actor utils.Actor, req *RegisterReq) (*entity.User, error) {
	if !actor.IsAdmin() {
		return nil, apperr.Forbidden("only admins can create users")
	}
	if req.Role != entity.RoleAdmin && req.BranchID == nil {
		return nil, apperr.Validation("branchId is required for %s accounts", req.Role)
	}
	exists, err := s.Repo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("email %q already registered", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Email:     req.Email,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		BranchID:  req.BranchID,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	user, err := s.Repo.Get(userID)
	if err != nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}
