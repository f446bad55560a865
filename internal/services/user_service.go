package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/CachoMX/partnership-kpi/internal/models"
	"github.com/CachoMX/partnership-kpi/internal/redis"
	"github.com/CachoMX/partnership-kpi/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrCannotDeleteAdmin = errors.New("cannot delete admin users")
	ErrInvalidRole       = errors.New("invalid role")
)

// RoleCache is the slice of the redis client the user service needs. Role
// lookups run on every dashboard load and the answer changes rarely, so they
// are the one thing worth caching.
type RoleCache interface {
	GetUserRole(email string) (*redis.RoleInfo, error)
	SetUserRole(email string, info *redis.RoleInfo, ttl time.Duration) error
	DeleteUserRole(email string) error
}

type UserService interface {
	// CreateUser provisions a dashboard account. Closer and setter accounts
	// get a matching rep row, linked by email.
	CreateUser(email, password, name, role string) (*models.User, error)
	UpdateUser(id, name, email, role string) error
	// DeleteUser removes the account and, for rep accounts, the rep row and
	// every call credited to it. Admin accounts cannot be deleted.
	DeleteUser(id string) error
	GetAllUsers() ([]models.User, error)
	// LookupRole maps a login email to its role and linked rep id.
	// Unknown emails return (nil, nil).
	LookupRole(email string) (*redis.RoleInfo, error)
	// CleanupOrphanedReps removes closer/setter rows whose email no longer
	// matches any user account. Returns how many rows were removed.
	CleanupOrphanedReps() (int, error)
}

type userService struct {
	userRepo   repository.UserRepository
	closerRepo repository.CloserRepository
	setterRepo repository.SetterRepository
	callRepo   repository.CallRepository
	roleCache  RoleCache
	cacheTTL   time.Duration
}

func NewUserService(userRepo repository.UserRepository, closerRepo repository.CloserRepository, setterRepo repository.SetterRepository, callRepo repository.CallRepository, roleCache RoleCache, cacheTTL time.Duration) UserService {
	return &userService{
		userRepo:   userRepo,
		closerRepo: closerRepo,
		setterRepo: setterRepo,
		callRepo:   callRepo,
		roleCache:  roleCache,
		cacheTTL:   cacheTTL,
	}
}

func validRole(role string) bool {
	switch models.UserRole(role) {
	case models.RoleAdmin, models.RoleCloser, models.RoleSetter:
		return true
	}
	return false
}

func (s *userService) CreateUser(email, password, name, role string) (*models.User, error) {
	if !validRole(role) {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	// Rep rows link back to the account by email. A failure here leaves a
	// usable account that LookupRole reports as unlinked, so log and move on.
	switch models.UserRole(role) {
	case models.RoleCloser:
		closer := &models.Closer{Name: name, Email: email, CommissionRate: models.DefaultCommissionRate}
		if err := s.closerRepo.Create(closer); err != nil {
			log.Printf("Warning: failed to create closer record for %s: %v", email, err)
		}
	case models.RoleSetter:
		setter := &models.Setter{Name: name, Email: email}
		if err := s.setterRepo.Create(setter); err != nil {
			log.Printf("Warning: failed to create setter record for %s: %v", email, err)
		}
	}

	s.invalidateRole(email)
	return user, nil
}

func (s *userService) UpdateUser(id, name, email, role string) error {
	if !validRole(role) {
		return ErrInvalidRole
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}

	oldEmail := user.Email
	user.Name = name
	user.Email = email
	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	// Keep the linked rep row in step when one exists.
	switch models.UserRole(role) {
	case models.RoleCloser:
		closer, err := s.closerRepo.GetByEmail(oldEmail)
		if err != nil {
			return err
		}
		if closer != nil {
			closer.Name = name
			closer.Email = email
			if err := s.closerRepo.Update(closer); err != nil {
				return err
			}
		}
	case models.RoleSetter:
		setter, err := s.setterRepo.GetByEmail(oldEmail)
		if err != nil {
			return err
		}
		if setter != nil {
			setter.Name = name
			setter.Email = email
			if err := s.setterRepo.Update(setter); err != nil {
				return err
			}
		}
	}

	s.invalidateRole(oldEmail)
	s.invalidateRole(email)
	return nil
}

func (s *userService) DeleteUser(id string) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}

	if models.UserRole(user.Role) == models.RoleAdmin {
		return ErrCannotDeleteAdmin
	}

	// Calls credited to the rep go with the rep row.
	switch models.UserRole(user.Role) {
	case models.RoleCloser:
		closer, err := s.closerRepo.GetByEmail(user.Email)
		if err != nil {
			return err
		}
		if closer != nil {
			if err := s.callRepo.DeleteByCloserID(closer.ID); err != nil {
				return err
			}
			if err := s.closerRepo.DeleteByEmail(user.Email); err != nil {
				return err
			}
		}
	case models.RoleSetter:
		setter, err := s.setterRepo.GetByEmail(user.Email)
		if err != nil {
			return err
		}
		if setter != nil {
			if err := s.callRepo.DeleteBySetterID(setter.ID); err != nil {
				return err
			}
			if err := s.setterRepo.DeleteByEmail(user.Email); err != nil {
				return err
			}
		}
	}

	if err := s.userRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateRole(user.Email)
	return nil
}

func (s *userService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *userService) LookupRole(email string) (*redis.RoleInfo, error) {
	email = strings.ToLower(email)

	if s.roleCache != nil {
		if info, err := s.roleCache.GetUserRole(email); err != nil {
			log.Printf("Warning: role cache read failed for %s: %v", email, err)
		} else if info != nil {
			return info, nil
		}
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	info := &redis.RoleInfo{Role: user.Role, Name: user.Name}

	switch models.UserRole(user.Role) {
	case models.RoleCloser:
		closer, err := s.closerRepo.GetByEmail(email)
		if err != nil {
			return nil, err
		}
		if closer != nil {
			info.CloserID = &closer.ID
		}
	case models.RoleSetter:
		setter, err := s.setterRepo.GetByEmail(email)
		if err != nil {
			return nil, err
		}
		if setter != nil {
			info.SetterID = &setter.ID
		}
	}

	if s.roleCache != nil {
		if err := s.roleCache.SetUserRole(email, info, s.cacheTTL); err != nil {
			log.Printf("Warning: role cache write failed for %s: %v", email, err)
		}
	}

	return info, nil
}

func (s *userService) CleanupOrphanedReps() (int, error) {
	removed := 0

	closers, err := s.closerRepo.GetAll()
	if err != nil {
		return 0, err
	}
	for _, closer := range closers {
		if closer.Email == "" {
			continue
		}
		user, err := s.userRepo.GetByEmail(closer.Email)
		if err != nil {
			return removed, err
		}
		if user == nil {
			if err := s.closerRepo.DeleteByEmail(closer.Email); err != nil {
				return removed, err
			}
			removed++
		}
	}

	setters, err := s.setterRepo.GetAll()
	if err != nil {
		return removed, err
	}
	for _, setter := range setters {
		if setter.Email == "" {
			continue
		}
		user, err := s.userRepo.GetByEmail(setter.Email)
		if err != nil {
			return removed, err
		}
		if user == nil {
			if err := s.setterRepo.DeleteByEmail(setter.Email); err != nil {
				return removed, err
			}
			removed++
		}
	}

	return removed, nil
}

func (s *userService) invalidateRole(email string) {
	if s.roleCache == nil {
		return
	}
	if err := s.roleCache.DeleteUserRole(strings.ToLower(email)); err != nil {
		log.Printf("Warning: role cache invalidation failed for %s: %v", email, err)
	}
}
