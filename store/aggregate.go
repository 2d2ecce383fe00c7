package store

import (
	"fmt"
	"sort"

	"ticket-storefront/models"
)

// GetDashboardMetrics folds over the four primary collections. Revenue
// sums every order's total regardless of status; refunded and cancelled
// orders still count. Observed storefront behavior, kept as is.
func (s *Store) GetDashboardMetrics() models.DashboardMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var m models.DashboardMetrics

	m.TotalUsers = len(s.users)
	for _, u := range s.users {
		if u.Status == models.UserStatusActive {
			m.ActiveUsers++
		}
	}

	m.TotalOrganizers = len(s.organizers)
	for _, o := range s.organizers {
		if o.VerificationStatus == models.VerificationVerified {
			m.VerifiedOrganizers++
		}
	}

	m.TotalEvents = len(s.events)
	for _, e := range s.events {
		if e.Status == models.EventStatusActive {
			m.ActiveEvents++
		}
	}

	for _, o := range s.orders {
		m.TotalRevenue += o.TotalAmount
	}

	return m
}

// GetRecentActivities merges registrations, event creations and placed
// orders into one feed, newest first, truncated to limit. Everything is
// materialized and sorted once; fine at seed scale.
func (s *Store) GetRecentActivities(limit int) []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := make([]models.Activity, 0, len(s.users)+len(s.events)+len(s.orders))

	for _, u := range s.users {
		activities = append(activities, models.Activity{
			Type:        models.ActivityUserRegistered,
			RefID:       u.ID.String(),
			Description: fmt.Sprintf("%s registered", u.Name),
			Timestamp:   u.CreatedAt,
		})
	}
	for _, e := range s.events {
		activities = append(activities, models.Activity{
			Type:        models.ActivityEventCreated,
			RefID:       e.ID.String(),
			Description: fmt.Sprintf("Event %q created", e.Name),
			Timestamp:   e.CreatedAt,
		})
	}
	for _, o := range s.orders {
		activities = append(activities, models.Activity{
			Type:        models.ActivityOrderPlaced,
			RefID:       o.ID.String(),
			Description: fmt.Sprintf("Order %s placed for %.2f", o.ID, o.TotalAmount),
			Timestamp:   o.CreatedAt,
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})

	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	return activities
}
