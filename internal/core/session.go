package core

import (
	"time"

	"github.com/google/uuid"
)

// Session is the state of one dashboard session: the dataset loaded at
// startup plus the render options every pass uses. The dataset is never
// modified after the session is created; the filter selection is supplied
// per pass.
type Session struct {
	ID       uuid.UUID
	Source   string
	LoadedAt time.Time

	dataset Dataset
	choices FilterChoices
	opts    RenderOptions
}

// NewSession wraps a loaded dataset.
func NewSession(source string, ds Dataset, opts RenderOptions) *Session {
	return &Session{
		ID:       uuid.New(),
		Source:   source,
		LoadedAt: time.Now(),
		dataset:  ds,
		choices:  Choices(ds),
		opts:     opts,
	}
}

// Dataset returns the loaded records. Callers must not modify them.
func (s *Session) Dataset() Dataset {
	return s.dataset
}

// Choices returns the filter values available in the dataset.
func (s *Session) Choices() FilterChoices {
	return s.choices
}

// DefaultSelection selects every value of every dimension.
func (s *Session) DefaultSelection() Selection {
	return Selection{
		Years:        NewSet(s.choices.Years...),
		Seniorities:  NewSet(s.choices.Seniorities...),
		Contracts:    NewSet(s.choices.Contracts...),
		CompanySizes: NewSet(s.choices.CompanySizes...),
	}
}

// Render runs a pass over the session dataset. page and pageSize override
// the session's paging for this call only.
func (s *Session) Render(sel Selection, page, pageSize int) ViewModel {
	opts := s.opts
	opts.Page = page
	opts.PageSize = pageSize
	return Render(s.dataset, sel, opts)
}

// Filtered returns the full filtered view, unpaginated.
func (s *Session) Filtered(sel Selection) FilteredView {
	return Filter(s.dataset, sel, s.opts.Filter)
}

// Options returns the render options the session was created with.
func (s *Session) Options() RenderOptions {
	return s.opts
}
