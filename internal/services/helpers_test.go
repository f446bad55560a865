package services

import (
	"errors"
	"time"

	"github.com/CachoMX/partnership-kpi/internal/models"
	"github.com/CachoMX/partnership-kpi/internal/redis"
	"github.com/CachoMX/partnership-kpi/internal/repository"

	"gorm.io/gorm"
)

// In-memory fakes for the repository interfaces. Only the behavior the
// services under test exercise is implemented.

type fakeCallRepo struct {
	calls         []models.Call
	created       []*models.Call
	createErr     error
	updatedID     string
	updatedFields map[string]interface{}
	updateErr     error
	deletedCloser string
	deletedSetter string
}

func (r *fakeCallRepo) Create(call *models.Call) error {
	if r.createErr != nil {
		return r.createErr
	}
	if call.ID == "" {
		call.ID = "call-" + string(rune('1'+len(r.created)))
	}
	r.created = append(r.created, call)
	return nil
}

func (r *fakeCallRepo) GetByID(id string) (*models.Call, error) {
	for i := range r.calls {
		if r.calls[i].ID == id {
			return &r.calls[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCallRepo) GetAll() ([]models.Call, error) {
	return r.calls, nil
}

func (r *fakeCallRepo) List(filter repository.CallFilter) ([]models.Call, error) {
	return r.calls, nil
}

func (r *fakeCallRepo) Count(filter repository.CallFilter) (int64, error) {
	return int64(len(r.calls)), nil
}

func (r *fakeCallRepo) UpdateFields(id string, fields map[string]interface{}) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updatedID = id
	r.updatedFields = fields
	return nil
}

func (r *fakeCallRepo) DeleteByCloserID(closerID string) error {
	r.deletedCloser = closerID
	return nil
}

func (r *fakeCallRepo) DeleteBySetterID(setterID string) error {
	r.deletedSetter = setterID
	return nil
}

type fakeCloserRepo struct {
	byName    map[string]*models.Closer
	byEmail   map[string]*models.Closer
	created   []*models.Closer
	createErr error
	deleted   []string
}

func (r *fakeCloserRepo) Create(closer *models.Closer) error {
	if r.createErr != nil {
		return r.createErr
	}
	if closer.ID == "" {
		closer.ID = "closer-new"
	}
	r.created = append(r.created, closer)
	return nil
}

func (r *fakeCloserRepo) GetByID(id string) (*models.Closer, error) {
	for _, c := range r.byName {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCloserRepo) GetByName(name string) (*models.Closer, error) {
	return r.byName[name], nil
}

func (r *fakeCloserRepo) GetByEmail(email string) (*models.Closer, error) {
	return r.byEmail[email], nil
}

func (r *fakeCloserRepo) GetAll() ([]models.Closer, error) {
	var closers []models.Closer
	for _, c := range r.byName {
		closers = append(closers, *c)
	}
	return closers, nil
}

func (r *fakeCloserRepo) Update(closer *models.Closer) error {
	return nil
}

func (r *fakeCloserRepo) DeleteByEmail(email string) error {
	r.deleted = append(r.deleted, email)
	return nil
}

type fakeSetterRepo struct {
	byName    map[string]*models.Setter
	byEmail   map[string]*models.Setter
	created   []*models.Setter
	createErr error
	deleted   []string
}

func (r *fakeSetterRepo) Create(setter *models.Setter) error {
	if r.createErr != nil {
		return r.createErr
	}
	if setter.ID == "" {
		setter.ID = "setter-new"
	}
	r.created = append(r.created, setter)
	return nil
}

func (r *fakeSetterRepo) GetByID(id string) (*models.Setter, error) {
	for _, s := range r.byName {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSetterRepo) GetByName(name string) (*models.Setter, error) {
	return r.byName[name], nil
}

func (r *fakeSetterRepo) GetByEmail(email string) (*models.Setter, error) {
	return r.byEmail[email], nil
}

func (r *fakeSetterRepo) GetAll() ([]models.Setter, error) {
	var setters []models.Setter
	for _, s := range r.byName {
		setters = append(setters, *s)
	}
	return setters, nil
}

func (r *fakeSetterRepo) Update(setter *models.Setter) error {
	return nil
}

func (r *fakeSetterRepo) DeleteByEmail(email string) error {
	r.deleted = append(r.deleted, email)
	return nil
}

type fakeUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
	created []*models.User
	deleted []string
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = "user-new"
	}
	r.created = append(r.created, user)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	var users []models.User
	for _, u := range r.byID {
		users = append(users, *u)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeRoleCache struct {
	store      map[string]*redis.RoleInfo
	gets, sets int
	deletes    []string
}

func newFakeRoleCache() *fakeRoleCache {
	return &fakeRoleCache{store: make(map[string]*redis.RoleInfo)}
}

func (c *fakeRoleCache) GetUserRole(email string) (*redis.RoleInfo, error) {
	c.gets++
	return c.store[email], nil
}

func (c *fakeRoleCache) SetUserRole(email string, info *redis.RoleInfo, ttl time.Duration) error {
	c.sets++
	c.store[email] = info
	return nil
}

func (c *fakeRoleCache) DeleteUserRole(email string) error {
	c.deletes = append(c.deletes, email)
	delete(c.store, email)
	return nil
}

var errStorage = errors.New("storage unavailable")
