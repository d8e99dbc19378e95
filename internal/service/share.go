package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/ocallan/figureshelf/internal/domain"
)

// shareTokenLength sizes generated share tokens. Tokens double as bearer
// credentials for public read access, so they come from a CSPRNG-backed
// URL-safe alphabet.
const shareTokenLength = 32

// ShareService manages the lifecycle of share links: at most one per
// (user, kind), toggled inactive rather than deleted so the token and view
// history survive.
type ShareService struct {
	shares domain.ShareLinkRepository
}

// NewShareService creates a new ShareService.
func NewShareService(shares domain.ShareLinkRepository) *ShareService {
	return &ShareService{shares: shares}
}

// CreateOrRefresh ensures the user has an active share link for the kind.
// No existing row creates one with a fresh token; an inactive row is
// reactivated in place; an active row gets the new title and description.
// The token never rotates while a row exists.
func (s *ShareService) CreateOrRefresh(ctx context.Context, userID int64, kind domain.ShareKind, title, description string) (*domain.ShareLink, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	existing, err := s.shares.GetByUserAndKind(ctx, userID, kind)
	if err == nil {
		return s.refresh(ctx, existing, title, description)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get share link: %w", err)
	}

	token, err := gonanoid.New(shareTokenLength)
	if err != nil {
		return nil, fmt.Errorf("generate share token: %w", err)
	}

	link := &domain.ShareLink{
		UserID:      userID,
		Kind:        kind,
		Token:       token,
		Title:       title,
		Description: description,
		Active:      true,
	}
	if err := s.shares.Create(ctx, link); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Lost a race with a concurrent create for the same (user, kind);
			// the stored row wins and gets refreshed instead.
			stored, gerr := s.shares.GetByUserAndKind(ctx, userID, kind)
			if gerr != nil {
				return nil, fmt.Errorf("get share link after conflict: %w", gerr)
			}
			return s.refresh(ctx, stored, title, description)
		}
		return nil, fmt.Errorf("create share link: %w", err)
	}
	return link, nil
}

func (s *ShareService) refresh(ctx context.Context, link *domain.ShareLink, title, description string) (*domain.ShareLink, error) {
	if err := s.shares.UpdateDetails(ctx, link.ID, title, description, true); err != nil {
		return nil, fmt.Errorf("update share link: %w", err)
	}
	link.Title = title
	link.Description = description
	link.Active = true
	return link, nil
}

// Get returns the user's share link for the kind, active or not.
func (s *ShareService) Get(ctx context.Context, userID int64, kind domain.ShareKind) (*domain.ShareLink, error) {
	return s.shares.GetByUserAndKind(ctx, userID, kind)
}

// SetActive flips the active flag. A no-op when the link is already in the
// requested state. The token and view count are untouched either way.
func (s *ShareService) SetActive(ctx context.Context, userID int64, kind domain.ShareKind, active bool) (*domain.ShareLink, error) {
	link, err := s.shares.GetByUserAndKind(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	if link.Active == active {
		return link, nil
	}
	if err := s.shares.SetActive(ctx, link.ID, active); err != nil {
		return nil, fmt.Errorf("set share link active: %w", err)
	}
	link.Active = active
	return link, nil
}

// Resolve looks a link up by token regardless of its active flag. Access
// gating on the flag is the public view resolver's job, so "not found" and
// "found but disabled" stay distinguishable internally.
func (s *ShareService) Resolve(ctx context.Context, token string) (*domain.ShareLink, error) {
	return s.shares.GetByToken(ctx, token)
}

// RecordView adds exactly one to the link's view counter.
func (s *ShareService) RecordView(ctx context.Context, linkID int64) error {
	return s.shares.IncrementViewCount(ctx, linkID)
}
