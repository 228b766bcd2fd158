package widget

import (
	"context"
	"fxwidget/internal/domain"
	"fxwidget/internal/rate"
	"sync"
	"time"

	"github.com/google/uuid"
)

const historicalTimeout = 15 * time.Second

// Rates is what a session needs from the rate store.
type Rates interface {
	Codes() []string
	Anchor() string
	Convert(amount, base, target string) (string, error)
	Status() rate.Status
}

type HistoricalFetcher interface {
	FetchAsync(ctx context.Context, base, target string) <-chan rate.HistoricalResult
}

type Favorites interface {
	Add(ctx context.Context, base, target string) (domain.Favorite, error)
	Render(ctx context.Context) ([]domain.Favorite, error)
	Find(ctx context.Context, key domain.PairKey) (domain.Favorite, error)
}

type Validator interface {
	ValidateBase(base string) error
	ValidateTarget(target string) error
}

// Deps groups the collaborators shared by all sessions.
type Deps struct {
	Rates      Rates
	Historical HistoricalFetcher
	Favorites  Favorites
	Validator  Validator
}

// Session is the state of one converter widget: the two selections, the
// amount field and the two display regions.
type Session struct {
	id   uuid.UUID
	deps Deps

	mu         sync.Mutex
	base       string
	target     string
	amount     string
	converted  string
	historical string

	// historical requests are sequenced: only the latest may write the display
	historicalSeq    uint64
	cancelHistorical context.CancelFunc
}

// View is a read-only copy of the widget surface.
type View struct {
	ID         string            `json:"id"`
	Base       string            `json:"base"`
	Target     string            `json:"target"`
	Amount     string            `json:"amount"`
	Converted  string            `json:"converted"`
	Historical string            `json:"historical"`
	Favorites  []domain.Favorite `json:"favorites"`
	Rates      rate.Status       `json:"rates"`
}

// NewSession selects the anchor currency on both sides when it is offered,
// otherwise the first offered code.
func NewSession(deps Deps) *Session {
	s := &Session{id: uuid.New(), deps: deps}
	s.selectDefaultsLocked()
	return s
}

func (s *Session) ID() uuid.UUID { return s.id }

// selectDefaultsLocked fills an empty selection once codes are offered; a
// session opened while rates were unavailable picks them up this way.
func (s *Session) selectDefaultsLocked() {
	if s.base != "" && s.target != "" {
		return
	}
	base, target := s.defaultSelection()
	if s.base == "" {
		s.base = base
	}
	if s.target == "" {
		s.target = target
	}
}

func (s *Session) defaultSelection() (string, string) {
	codes := s.deps.Rates.Codes()
	if len(codes) == 0 {
		return "", ""
	}
	anchor := s.deps.Rates.Anchor()
	for _, c := range codes {
		if c == anchor {
			return anchor, anchor
		}
	}
	return codes[0], codes[0]
}

func (s *Session) SetBase(base string) error {
	if err := s.deps.Validator.ValidateBase(base); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.base = base
	s.convertLocked()
	return nil
}

func (s *Session) SetTarget(target string) error {
	if err := s.deps.Validator.ValidateTarget(target); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = target
	s.convertLocked()
	return nil
}

func (s *Session) SetAmount(amount string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.amount = amount
	s.convertLocked()
}

func (s *Session) convertLocked() {
	s.selectDefaultsLocked()
	if s.base == "" || s.target == "" {
		s.converted = domain.RatesUnavailableNotice
		return
	}
	res, err := s.deps.Rates.Convert(s.amount, s.base, s.target)
	if err != nil {
		s.converted = rate.DisplayMessage(err)
		return
	}
	s.converted = res
}

// RequestHistorical fetches the historical rate for the current selection.
// A newer request cancels this one and its result is then discarded.
// The returned channel is closed once the request has settled.
func (s *Session) RequestHistorical(ctx context.Context) <-chan struct{} {
	s.mu.Lock()
	if s.cancelHistorical != nil {
		s.cancelHistorical()
	}
	s.historicalSeq++
	seq := s.historicalSeq
	s.selectDefaultsLocked()
	base, target := s.base, s.target
	if base == "" || target == "" {
		s.cancelHistorical = nil
		s.historical = rate.HistoricalErrorMessage
		s.mu.Unlock()
		done := make(chan struct{})
		close(done)
		return done
	}
	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), historicalTimeout)
	s.cancelHistorical = cancel
	s.mu.Unlock()

	results := s.deps.Historical.FetchAsync(fetchCtx, base, target)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		res, ok := <-results
		if !ok {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if seq != s.historicalSeq {
			return
		}
		s.historical = res.Message()
		s.cancelHistorical = nil
	}()
	return done
}

func (s *Session) SaveFavorite(ctx context.Context) (domain.Favorite, error) {
	s.mu.Lock()
	s.selectDefaultsLocked()
	base, target := s.base, s.target
	s.mu.Unlock()

	if err := s.deps.Validator.ValidateBase(base); err != nil {
		return domain.Favorite{}, err
	}
	if err := s.deps.Validator.ValidateTarget(target); err != nil {
		return domain.Favorite{}, err
	}
	return s.deps.Favorites.Add(ctx, base, target)
}

// ActivateFavorite selects the favorite pair and converts the current amount.
func (s *Session) ActivateFavorite(ctx context.Context, key domain.PairKey) error {
	fav, err := s.deps.Favorites.Find(ctx, key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.base = fav.Base
	s.target = fav.Target
	s.convertLocked()
	return nil
}

func (s *Session) View(ctx context.Context) (View, error) {
	favorites, err := s.deps.Favorites.Render(ctx)
	if err != nil {
		return View{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectDefaultsLocked()
	return View{
		ID:         s.id.String(),
		Base:       s.base,
		Target:     s.target,
		Amount:     s.amount,
		Converted:  s.converted,
		Historical: s.historical,
		Favorites:  favorites,
		Rates:      s.deps.Rates.Status(),
	}, nil
}

// Close cancels an in-flight historical request.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelHistorical != nil {
		s.cancelHistorical()
		s.cancelHistorical = nil
	}
}
