// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (keypairs, parameters, session state) and contracts
// (interfaces for the store, prompt and codec collaborators) only.
package domain
