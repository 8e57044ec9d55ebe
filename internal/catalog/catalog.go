// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catalog serves the immutable demo data: the asset list, the
// seeded accounts and the plan metadata. All three are embedded YAML.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/market-pulse/models"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	assetsFile = "data/assets.yaml"
	usersFile  = "data/users.yaml"
	plansFile  = "data/plans.yaml"
)

// Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	assets   []models.Asset
	bySymbol map[string]models.Asset
	users    map[string]models.User
	plans    map[models.Tier]models.Plan
	order    []models.Tier
}

// Load builds a catalog from the embedded fixtures.
func Load() (*Catalog, error) {
	return LoadWithCost(bcrypt.DefaultCost)
}

// LoadWithCost is [Load] with an explicit bcrypt cost.
func LoadWithCost(cost int) (*Catalog, error) {
	return LoadFS(embedded, cost)
}

// LoadFS builds a catalog from fsys, hashing seeded passwords with cost.
func LoadFS(fsys fs.FS, cost int) (*Catalog, error) {
	var (
		assets []models.Asset
		users  []models.User
		plans  []models.Plan
	)

	for name, dst := range map[string]any{assetsFile: &assets, usersFile: &users, plansFile: &plans} {
		if err := decodeYAML(fsys, name, dst); err != nil {
			return nil, err
		}
	}

	return New(assets, users, plans, cost)
}

func decodeYAML(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidFixture, name, err)
	}
	return nil
}

// New builds a catalog from in-memory fixtures. Plaintext user passwords are
// replaced by bcrypt hashes.
func New(assets []models.Asset, users []models.User, plans []models.Plan, cost int) (*Catalog, error) {
	c := &Catalog{
		assets:   make([]models.Asset, 0, len(assets)),
		bySymbol: make(map[string]models.Asset, len(assets)),
		users:    make(map[string]models.User, len(users)),
		plans:    make(map[models.Tier]models.Plan, len(plans)),
	}

	for _, a := range assets {
		a.Symbol = strings.ToUpper(strings.TrimSpace(a.Symbol))
		if a.Symbol == "" || (a.Type != models.AssetStock && a.Type != models.AssetCrypto) {
			return nil, fmt.Errorf("%w: asset %q", ErrInvalidFixture, a.Symbol)
		}
		if _, dup := c.bySymbol[a.Symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate asset %q", ErrInvalidFixture, a.Symbol)
		}
		c.assets = append(c.assets, a)
		c.bySymbol[a.Symbol] = a
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("error hashing password of %s: %w", u.Email, err)
		}
		u.PasswordHash = hash
		u.Password = ""
		u.Subscription, _ = models.ParseTier(string(u.Subscription))
		c.users[u.Email] = u
	}

	for _, p := range plans {
		if _, ok := models.ParseTier(string(p.ID)); !ok {
			return nil, fmt.Errorf("%w: plan %q", ErrInvalidFixture, p.ID)
		}
		c.plans[p.ID] = p
		c.order = append(c.order, p.ID)
	}

	return c, nil
}

// Assets returns a copy of the catalog in display order.
func (c *Catalog) Assets() []models.Asset {
	out := make([]models.Asset, len(c.assets))
	copy(out, c.assets)
	return out
}

// Asset looks an asset up by symbol, ignoring case and surrounding spaces.
func (c *Catalog) Asset(symbol string) (models.Asset, error) {
	a, ok := c.bySymbol[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return models.Asset{}, fmt.Errorf("%w: %q", ErrAssetNotFound, symbol)
	}
	return a, nil
}

// Search runs [Search] over the catalog and truncates to limit.
func (c *Catalog) Search(query string, filter models.TypeFilter, limit int) []models.Asset {
	return Truncate(Search(c.assets, query, filter), limit)
}

// User returns the seeded account for email. The email is matched exactly
// after trimming.
func (c *Catalog) User(email string) (models.User, error) {
	u, ok := c.users[strings.TrimSpace(email)]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}

// Authenticate checks password against the seeded account for email.
func (c *Catalog) Authenticate(email, password string) (models.User, error) {
	u, err := c.User(email)
	if err != nil {
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return models.User{}, ErrPasswordMismatch
	}
	return u, nil
}

// Plans returns all plans in fixture order.
func (c *Catalog) Plans() []models.Plan {
	out := make([]models.Plan, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.plans[id])
	}
	return out
}

// Plan returns the plan of tier; unknown tiers get the free plan.
func (c *Catalog) Plan(tier models.Tier) (models.Plan, error) {
	t, _ := models.ParseTier(string(tier))
	p, ok := c.plans[t]
	if !ok {
		return models.Plan{}, fmt.Errorf("%w: %s", ErrPlanNotFound, t)
	}
	return p, nil
}
