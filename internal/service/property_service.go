package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/Lutefd/estate-site/internal/cache"
	"github.com/Lutefd/estate-site/internal/commons"
	"github.com/Lutefd/estate-site/internal/currency"
	"github.com/Lutefd/estate-site/internal/logger"
	"github.com/Lutefd/estate-site/internal/media"
	"github.com/Lutefd/estate-site/internal/model"
	"github.com/Lutefd/estate-site/internal/repository"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type PropertyService struct {
	repo     repository.PropertyRepository
	rates    RatesServiceInterface
	cache    cache.Cache
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

// NewPropertyService wires the catalogue. store may be nil to disable view caching.
func NewPropertyService(repo repository.PropertyRepository, rates RatesServiceInterface, store cache.Cache) *PropertyService {
	return &PropertyService{
		repo:     repo,
		rates:    rates,
		cache:    store,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy:   bluemonday.UGCPolicy(),
	}
}

func listKey(code model.CurrencyCode) string {
	return cache.PropertyPrefix + "list:" + string(code)
}

func (s *PropertyService) List(ctx context.Context, code model.CurrencyCode) ([]model.PropertyView, error) {
	if _, ok := model.ParseCurrencyCode(string(code)); !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnsupportedCurrency, code)
	}
	_ = s.rates.EnsureLoaded(ctx)

	// Views priced with fallback rates are never cached, and cached views are
	// only served while this instance has live rates.
	useCache := s.cache != nil && s.rates.Snapshot().Advisory == ""

	var views []model.PropertyView
	if useCache {
		err := s.cache.GetJSON(ctx, listKey(code), &views)
		if err == nil {
			return views, nil
		}
		if !errors.Is(err, model.ErrCacheMiss) {
			logger.Errorf("failed to read cached properties: %v", err)
		}
	}

	properties, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	views = make([]model.PropertyView, 0, len(properties))
	for _, p := range properties {
		views = append(views, s.buildView(p, code))
	}

	if useCache {
		if err := s.cache.SetJSON(ctx, listKey(code), views, commons.PropertyCacheExpiration); err != nil {
			logger.Errorf("failed to cache properties: %v", err)
		}
	}
	return views, nil
}

func (s *PropertyService) Get(ctx context.Context, id string, code model.CurrencyCode) (model.PropertyView, error) {
	if _, ok := model.ParseCurrencyCode(string(code)); !ok {
		return model.PropertyView{}, fmt.Errorf("%w: %s", model.ErrUnsupportedCurrency, code)
	}
	_ = s.rates.EnsureLoaded(ctx)

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPropertyNotFound) {
			return model.PropertyView{}, err
		}
		return model.PropertyView{}, fmt.Errorf("failed to get property: %w", err)
	}
	return s.buildView(*p, code), nil
}

// Invalidate drops cached views so that prices pick up a new rate table.
func (s *PropertyService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.DeletePrefix(ctx, cache.PropertyPrefix)
}

func (s *PropertyService) buildView(p model.Property, code model.CurrencyCode) model.PropertyView {
	view := model.PropertyView{
		ID:              p.ID,
		Title:           p.Title,
		Location:        p.Location,
		Status:          p.Status,
		Type:            p.Type,
		Bedrooms:        p.Bedrooms,
		Bathrooms:       p.Bathrooms,
		Area:            p.Area,
		PriceText:       p.Price,
		Currency:        code,
		FormattedPrice:  p.Price,
		DescriptionHTML: s.renderDescription(p.ID, p.Description),
		Media: model.PropertyMedia{
			Exterior:   media.ClassifyList(p.ExteriorImages),
			Bedroom:    media.ClassifyList(p.BedroomImages),
			Bathroom:   media.ClassifyList(p.BathroomImages),
			LivingRoom: media.ClassifyList(p.LivingRoomImages),
		},
	}

	if amount, ok := currency.ParseUSD(p.Price); ok {
		view.PriceUSD = amount
		view.Price = s.rates.Convert(amount, code)
		view.FormattedPrice = s.rates.Format(amount, code)
	}
	return view
}

func (s *PropertyService) renderDescription(id, description string) string {
	if description == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(description), &buf); err != nil {
		logger.Errorf("failed to render description of property %s: %v", id, err)
		return s.policy.Sanitize(description)
	}
	return s.policy.Sanitize(buf.String())
}
