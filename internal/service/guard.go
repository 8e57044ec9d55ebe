// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/market-pulse/internal/entitlement"
	"github.com/MKhiriev/market-pulse/models"
)

// authorize runs the entitlement guard and turns a denial into ErrForbidden.
func authorize(user models.User, a entitlement.Action) error {
	d := entitlement.Authorize(user.Subscription, a)
	if !d.Allowed {
		return fmt.Errorf("%w: %s", ErrForbidden, d.Reason)
	}
	return nil
}

// partitionLocks serialises read-modify-write cycles on one storage
// partition. Locks are never released from the map; the key space is the
// seeded account list.
type partitionLocks struct {
	locks sync.Map
}

func (p *partitionLocks) lock(key string) func() {
	m, _ := p.locks.LoadOrStore(key, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
