package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"vg-ms-user/internal/domain/registry"
	"vg-ms-user/internal/domain/user"
	"vg-ms-user/internal/domain/user_sede"
	"vg-ms-user/internal/infrastructure/mq"
)

// ---- registry ----

type FakeRegistry struct {
	FetchInstitutionFunc func(ctx context.Context, id string) (*registry.Institution, error)
	FetchHeadquarterFunc func(ctx context.Context, id string) (*registry.Headquarter, error)
}

func (f *FakeRegistry) FetchInstitution(ctx context.Context, id string) (*registry.Institution, error) {
	return f.FetchInstitutionFunc(ctx, id)
}

func (f *FakeRegistry) FetchHeadquarter(ctx context.Context, id string) (*registry.Headquarter, error) {
	return f.FetchHeadquarterFunc(ctx, id)
}

// registryOf answers from fixed status tables; ids missing from a table do not exist.
func registryOf(institutions, headquarters map[string]registry.StatusCode) *FakeRegistry {
	return &FakeRegistry{
		FetchInstitutionFunc: func(_ context.Context, id string) (*registry.Institution, error) {
			st, ok := institutions[id]
			if !ok {
				return nil, nil
			}
			return &registry.Institution{ID: id, Status: st}, nil
		},
		FetchHeadquarterFunc: func(_ context.Context, id string) (*registry.Headquarter, error) {
			st, ok := headquarters[id]
			if !ok {
				return nil, nil
			}
			return &registry.Headquarter{ID: id, Status: st}, nil
		},
	}
}

// ---- events ----

type fakeSink struct {
	ch chan mq.Event
}

func newSink() *fakeSink { return &fakeSink{ch: make(chan mq.Event, 64)} }

func (s *fakeSink) GetInputChan() chan mq.Event { return s.ch }

func (s *fakeSink) actions() []string {
	var out []string
	for {
		select {
		case e := <-s.ch:
			out = append(out, e.Action)
		default:
			return out
		}
	}
}

func newCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_counters"}, []string{"result"})
}

// ---- user repository ----

type memUserRepo struct {
	mu       sync.Mutex
	seq      int
	order    []string
	rows     map[string]user.User
	saves    int
	saveAlls int
}

func newMemUserRepo(seed ...user.User) *memUserRepo {
	r := &memUserRepo{rows: map[string]user.User{}}
	for _, u := range seed {
		r.put(u)
	}
	return r
}

func (r *memUserRepo) put(u user.User) user.User {
	if u.ID == "" {
		r.seq++
		u.ID = fmt.Sprintf("u-%d", r.seq)
	}
	if _, ok := r.rows[u.ID]; !ok {
		r.order = append(r.order, u.ID)
	}
	u.Permissions = slices.Clone(u.Permissions)
	r.rows[u.ID] = u
	return u
}

func (r *memUserRepo) get(id string) user.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id]
}

func (r *memUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *memUserRepo) filter(keep func(user.User) bool) user.Users {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out user.Users
	for _, id := range r.order {
		u := r.rows[id]
		if keep(u) {
			u.Permissions = slices.Clone(u.Permissions)
			out = append(out, &u)
		}
	}
	return out
}

func (r *memUserRepo) FindAll(context.Context) (user.Users, error) {
	return r.filter(func(user.User) bool { return true }), nil
}

func (r *memUserRepo) FindByStatus(_ context.Context, s user.Status) (user.Users, error) {
	return r.filter(func(u user.User) bool { return u.Status == s }), nil
}

func (r *memUserRepo) FindByRole(_ context.Context, role user.Role) (user.Users, error) {
	return r.filter(func(u user.User) bool { return u.Role == role }), nil
}

func (r *memUserRepo) FindByRoleAndStatus(_ context.Context, role user.Role, s user.Status) (user.Users, error) {
	return r.filter(func(u user.User) bool { return u.Role == role && u.Status == s }), nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	u.Permissions = slices.Clone(u.Permissions)
	return &u, nil
}

func (r *memUserRepo) Save(_ context.Context, u *user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	saved := r.put(*u)
	return &saved, nil
}

func (r *memUserRepo) SaveAll(_ context.Context, us user.Users) (user.Users, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveAlls++
	out := make(user.Users, len(us))
	for i, u := range us {
		saved := r.put(*u)
		out[i] = &saved
	}
	return out, nil
}

// ---- user sede repository ----

type memUserSedeRepo struct {
	mu    sync.Mutex
	seq   int
	order []string
	rows  map[string]user_sede.UserSede
	saves int
}

func newMemUserSedeRepo(seed ...user_sede.UserSede) *memUserSedeRepo {
	r := &memUserSedeRepo{rows: map[string]user_sede.UserSede{}}
	for _, us := range seed {
		r.put(us)
	}
	return r
}

func (r *memUserSedeRepo) put(us user_sede.UserSede) user_sede.UserSede {
	if us.ID == "" {
		r.seq++
		us.ID = fmt.Sprintf("us-%d", r.seq)
	}
	if _, ok := r.rows[us.ID]; !ok {
		r.order = append(r.order, us.ID)
	}
	us.Details = slices.Clone(us.Details)
	r.rows[us.ID] = us
	return us
}

func (r *memUserSedeRepo) get(id string) user_sede.UserSede {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id]
}

func (r *memUserSedeRepo) list(keep func(user_sede.UserSede) bool) user_sede.UserSedes {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out user_sede.UserSedes
	for _, id := range r.order {
		us := r.rows[id]
		if keep(us) {
			us.Details = slices.Clone(us.Details)
			out = append(out, &us)
		}
	}
	return out
}

func (r *memUserSedeRepo) FindAll(context.Context) (user_sede.UserSedes, error) {
	return r.list(func(user_sede.UserSede) bool { return true }), nil
}

func (r *memUserSedeRepo) FindByStatus(_ context.Context, s user_sede.Status) (user_sede.UserSedes, error) {
	return r.list(func(us user_sede.UserSede) bool { return us.Status == s }), nil
}

func (r *memUserSedeRepo) FindByID(_ context.Context, id string) (*user_sede.UserSede, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	us, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	us.Details = slices.Clone(us.Details)
	return &us, nil
}

func (r *memUserSedeRepo) Save(_ context.Context, us *user_sede.UserSede) (*user_sede.UserSede, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	saved := r.put(*us)
	return &saved, nil
}
