// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (scoreboards, games, details, favorites) and
// contracts (clients, stores, services) only.
package domain
