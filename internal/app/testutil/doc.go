// Package testutil provides shared mocks and fixtures for package tests.
//
// MockStore implements repository.Store and MockSpeechToText implements the
// provider client surface used by the poller and the API services. Both are
// testify mocks, so expectations are declared with On(...).Return(...) and
// verified with AssertExpectations.
//
// Fixture helpers (NewTranscription, NewCredits, NewVocabulary) build rows
// with sensible defaults that individual tests override.
package testutil
