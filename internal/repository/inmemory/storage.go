package inmemory

import (
	"cmp"
	"slices"
	"sync"
	"taskTracker/internal/domain/task/taskmodels"
	"taskTracker/internal/domain/user/usermodels"
	"taskTracker/internal/repository/snapshot"
	"time"

	"github.com/pkg/errors"
)

var ErrCorruptSnapshot = errors.New("corrupt snapshot")

// Persister - долговременное хранилище снапшота (файл или Postgres).
type Persister interface {
	Load() (snapshot.Snapshot, error)
	Save(snap snapshot.Snapshot) error
}

// Storage держит весь снапшот в памяти. Любая последовательность
// "проверить, затем изменить" выполняется целиком под mu вместе с записью
// снапшота в Persister, поэтому ответ об успехе уходит только после записи.
type Storage struct {
	mu        sync.RWMutex
	persister Persister
	now       func() time.Time
	lastStamp time.Time

	users  map[string]usermodels.User
	emails map[string]string
	tasks  map[string]taskmodels.Task
}

type Option func(*Storage)

// WithClock подменяет источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(s *Storage) {
		s.now = now
	}
}

// NewInMemoryStorage - хранилище без долговременной записи.
func NewInMemoryStorage(opts ...Option) *Storage {
	storage, _ := NewStorage(discard{}, opts...) //nolint:errcheck // discard не возвращает ошибок
	return storage
}

// NewStorage загружает снапшот из persister. Если снапшота еще нет,
// сразу записывает пустой, чтобы следующий старт нашел валидное состояние.
func NewStorage(persister Persister, opts ...Option) (*Storage, error) {
	storage := &Storage{
		persister: persister,
		now:       time.Now,
		users:     make(map[string]usermodels.User),
		emails:    make(map[string]string),
		tasks:     make(map[string]taskmodels.Task),
	}
	for _, opt := range opts {
		opt(storage)
	}

	if err := storage.load(); err != nil {
		return nil, err
	}
	return storage, nil
}

func (storage *Storage) load() error {
	snap, err := storage.persister.Load()
	if errors.Is(err, snapshot.ErrNotFound) {
		return errors.Wrap(storage.persister.Save(snapshot.Empty()), "persist empty snapshot")
	}
	if err != nil {
		return errors.Wrap(err, "load snapshot")
	}

	for _, user := range snap.Users {
		if _, ok := storage.emails[user.Email]; ok {
			return errors.Wrapf(ErrCorruptSnapshot, "duplicate email %q", user.Email)
		}
		storage.users[user.UUID] = user
		storage.emails[user.Email] = user.UUID
		storage.observe(user.CreatedAt)
	}

	for _, task := range snap.Tasks {
		storage.tasks[task.ID] = task
		storage.observe(task.CreatedAt)
		storage.observe(task.UpdatedAt)
	}

	return nil
}

// withLock выполняет fn под эксклюзивной блокировкой и, если fn прошла без
// ошибки, коммитит снапшот до снятия блокировки. При ошибке записи изменение
// в памяти не откатывается: следующий коммит запишет текущее состояние.
func (storage *Storage) withLock(fn func() error) error {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	if err := fn(); err != nil {
		return err
	}
	return storage.commit()
}

func (storage *Storage) withRLock(fn func()) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()
	fn()
}

// commit вызывается только под mu.
func (storage *Storage) commit() error {
	snap := snapshot.Empty()

	for _, user := range storage.users {
		snap.Users = append(snap.Users, user)
	}
	slices.SortFunc(snap.Users, func(a, b usermodels.User) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.UUID, b.UUID))
	})

	for _, task := range storage.tasks {
		snap.Tasks = append(snap.Tasks, task)
	}
	slices.SortFunc(snap.Tasks, func(a, b taskmodels.Task) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})

	return errors.Wrap(storage.persister.Save(snap), "commit snapshot")
}

// stamp возвращает строго возрастающее время, вызывается только под mu.
func (storage *Storage) stamp() time.Time {
	now := storage.now().UTC()
	if !now.After(storage.lastStamp) {
		now = storage.lastStamp.Add(time.Nanosecond)
	}
	storage.lastStamp = now
	return now
}

func (storage *Storage) observe(t time.Time) {
	if t.After(storage.lastStamp) {
		storage.lastStamp = t
	}
}

type discard struct{}

func (discard) Load() (snapshot.Snapshot, error) {
	return snapshot.Snapshot{}, snapshot.ErrNotFound
}

func (discard) Save(snapshot.Snapshot) error {
	return nil
}
