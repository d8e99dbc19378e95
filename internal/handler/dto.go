package handler

import (
	"time"

	"github.com/ocallan/figureshelf/internal/domain"
	"github.com/ocallan/figureshelf/internal/service"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

// ItemDTO is the JSON representation of a catalog item.
type ItemDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	Series      string  `json:"series"`
	SubSeries   string  `json:"subSeries"`
	Kind        string  `json:"kind"`
	ImageURL    string  `json:"imageUrl"`
	ReleaseDate *string `json:"releaseDate"`
}

func toItemDTO(i domain.Item) ItemDTO {
	dto := ItemDTO{
		ID:        i.ID,
		Name:      i.Name,
		Character: i.Character,
		Series:    i.Series,
		SubSeries: i.SubSeries,
		Kind:      i.Kind,
		ImageURL:  i.ImageURL,
	}
	if i.ReleaseDate != nil {
		s := i.ReleaseDate.Format("2006-01-02")
		dto.ReleaseDate = &s
	}
	return dto
}

func toItemDTOs(items []domain.Item) []ItemDTO {
	dtos := make([]ItemDTO, len(items))
	for i, item := range items {
		dtos[i] = toItemDTO(item)
	}
	return dtos
}

// CollectionEntryDTO is a collection record joined with its item.
type CollectionEntryDTO struct {
	Item       ItemDTO `json:"item"`
	AcquiredAt string  `json:"acquiredAt"`
	Condition  string  `json:"condition"`
	Note       string  `json:"note"`
	IsFavorite bool    `json:"isFavorite"`
}

func toCollectionEntryDTO(e domain.CollectionEntry) CollectionEntryDTO {
	return CollectionEntryDTO{
		Item:       toItemDTO(e.Item),
		AcquiredAt: e.AcquiredAt.Format(time.RFC3339),
		Condition:  e.Condition,
		Note:       e.Note,
		IsFavorite: e.IsFavorite,
	}
}

func toCollectionEntryDTOs(entries []domain.CollectionEntry) []CollectionEntryDTO {
	dtos := make([]CollectionEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toCollectionEntryDTO(e)
	}
	return dtos
}

// WishlistEntryDTO is a wishlist record joined with its item.
type WishlistEntryDTO struct {
	Item     ItemDTO `json:"item"`
	AddedAt  string  `json:"addedAt"`
	Priority int     `json:"priority"`
	Note     string  `json:"note"`
}

func toWishlistEntryDTO(e domain.WishlistEntry) WishlistEntryDTO {
	return WishlistEntryDTO{
		Item:     toItemDTO(e.Item),
		AddedAt:  e.AddedAt.Format(time.RFC3339),
		Priority: e.Priority,
		Note:     e.Note,
	}
}

func toWishlistEntryDTOs(entries []domain.WishlistEntry) []WishlistEntryDTO {
	dtos := make([]WishlistEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toWishlistEntryDTO(e)
	}
	return dtos
}

// ShareLinkDTO is the owner-facing JSON representation of a share link.
type ShareLinkDTO struct {
	Kind        string `json:"kind"`
	Token       string `json:"token"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	ViewCount   int64  `json:"viewCount"`
	CreatedAt   string `json:"createdAt"`
}

func toShareLinkDTO(l *domain.ShareLink) ShareLinkDTO {
	return ShareLinkDTO{
		Kind:        string(l.Kind),
		Token:       l.Token,
		Title:       l.Title,
		Description: l.Description,
		Active:      l.Active,
		ViewCount:   l.ViewCount,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
}

// StatsDTO is the JSON representation of a user's dashboard stats.
type StatsDTO struct {
	TotalItems           int64  `json:"totalItems"`
	OwnedCount           int64  `json:"ownedCount"`
	WishlistCount        int64  `json:"wishlistCount"`
	CompletionPercentage int    `json:"completionPercentage"`
	CollectionShareViews *int64 `json:"collectionShareViews,omitempty"`
	WishlistShareViews   *int64 `json:"wishlistShareViews,omitempty"`
}

func toStatsDTO(s *domain.Stats) StatsDTO {
	return StatsDTO{
		TotalItems:           s.TotalItems,
		OwnedCount:           s.OwnedCount,
		WishlistCount:        s.WishlistCount,
		CompletionPercentage: s.CompletionPercentage,
		CollectionShareViews: s.CollectionShareViews,
		WishlistShareViews:   s.WishlistShareViews,
	}
}

// PublicViewDTO is the anonymous-viewer JSON representation of a shared set.
type PublicViewDTO struct {
	OwnerName   string               `json:"ownerName"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Kind        string               `json:"kind"`
	ViewCount   int64                `json:"viewCount"`
	Collection  []CollectionEntryDTO `json:"collection,omitempty"`
	Wishlist    []WishlistEntryDTO   `json:"wishlist,omitempty"`
}

func toPublicViewDTO(v *service.PublicView) PublicViewDTO {
	dto := PublicViewDTO{
		OwnerName:   v.OwnerName,
		Title:       v.Title,
		Description: v.Description,
		Kind:        string(v.Kind),
		ViewCount:   v.ViewCount,
	}
	if v.Collection != nil {
		dto.Collection = toCollectionEntryDTOs(v.Collection)
	}
	if v.Wishlist != nil {
		dto.Wishlist = toWishlistEntryDTOs(v.Wishlist)
	}
	return dto
}
