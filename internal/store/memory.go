package store

import (
	"errors"
	"sync"
	"time"

	"inmomax/internal/model"
)

// ErrNotFound is returned when a property id is unknown.
var ErrNotFound = errors.New("property not found")

// Memory is the in-memory property store. All data lives in process memory
// and is lost on restart. A single RWMutex serializes writers so concurrent
// mutating requests cannot lose updates; reads take the shared lock and
// return copies, never aliases into internal state.
type Memory struct {
	mu         sync.RWMutex
	properties []model.Property
	agent      model.Agent
}

// NewMemory creates a store holding the given agent and initial properties.
func NewMemory(agent model.Agent, seed ...model.Property) *Memory {
	props := make([]model.Property, len(seed))
	copy(props, seed)
	return &Memory{
		properties: props,
		agent:      agent,
	}
}

// Agent returns the shared agent record attached to every property.
func (m *Memory) Agent() model.Agent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.agent
}

// List returns a snapshot of all properties in insertion order.
func (m *Memory) List() []model.Property {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Property, len(m.properties))
	copy(out, m.properties)
	return out
}

// Get returns the property with the given id without side effects.
func (m *Memory) Get(id int) (model.Property, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Property{}, ErrNotFound
}

// GetAndCountView returns the property with the given id and increments its
// view counter. The increment on the read path mirrors the public site
// behavior where every detail-page visit counts as a view.
func (m *Memory) GetAndCountView(id int) (model.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.properties {
		if m.properties[i].ID == id {
			m.properties[i].Views++
			return m.properties[i], nil
		}
	}
	return model.Property{}, ErrNotFound
}

// Create appends a new property built from input. The store assigns the id
// (max existing + 1), sets status available, featured false, the publication
// timestamp and a zero view counter.
func (m *Memory) Create(input *model.PropertyInput, now time.Time) model.Property {
	m.mu.Lock()
	defer m.mu.Unlock()

	maxID := 0
	for _, p := range m.properties {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	prop := model.Property{
		ID:          maxID + 1,
		Status:      model.StatusAvailable,
		Featured:    false,
		PublishedAt: now,
		Agent:       m.agent,
		Views:       0,
	}
	applyInput(&prop, input)

	m.properties = append(m.properties, prop)
	return prop
}

// Update replaces the mutable fields of the property with the given id and
// sets the update timestamp. Identity, status, featured flag, publication
// timestamp, agent and view counter are preserved.
func (m *Memory) Update(id int, input *model.PropertyInput, now time.Time) (model.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.properties {
		if m.properties[i].ID == id {
			applyInput(&m.properties[i], input)
			m.properties[i].UpdatedAt = &now
			return m.properties[i], nil
		}
	}
	return model.Property{}, ErrNotFound
}

// SoftDelete transitions the property to the inactive status. The record is
// retained and the transition is never reversed; deleting an already
// inactive property is a no-op.
func (m *Memory) SoftDelete(id int, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.properties {
		if m.properties[i].ID == id {
			if m.properties[i].Status != model.StatusInactive {
				m.properties[i].Status = model.StatusInactive
				m.properties[i].UpdatedAt = &now
			}
			return nil
		}
	}
	return ErrNotFound
}

// applyInput copies the client-supplied fields onto prop. Slices are copied
// so later mutation of the input cannot reach stored state.
func applyInput(prop *model.Property, input *model.PropertyInput) {
	prop.Title = input.Title
	prop.Description = input.Description
	prop.Price = input.Price
	prop.Location = input.Location
	prop.Address = input.Address
	prop.Type = input.Type
	prop.Operation = input.Operation
	prop.Rooms = input.Rooms
	prop.Bathrooms = input.Bathrooms
	prop.Area = input.Area
	prop.LotArea = input.LotArea
	prop.Age = input.Age
	prop.MaintenanceFee = input.MaintenanceFee
	prop.Features = append([]string(nil), input.Features...)
	prop.Services = append([]string(nil), input.Services...)
	prop.Images = append([]string(nil), input.Images...)
	if input.Coordinates != nil {
		coords := *input.Coordinates
		prop.Coordinates = &coords
	} else {
		prop.Coordinates = nil
	}
}
