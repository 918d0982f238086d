package services

import (
	"context"
	"math/rand"
)

// Credit score bounds returned by the bureau
const (
	CreditScoreMin = 550
	CreditScoreMax = 900
)

// CreditScorer fetches an applicant's credit score. The decision engine
// treats the score as an opaque integer in [550, 900]; it never computes
// one itself.
type CreditScorer interface {
	Score(ctx context.Context, taxID string) (int, error)
}

// randomCreditScorer stands in for a real credit bureau integration.
// TODO: replace with the bureau client once the integration is contracted.
type randomCreditScorer struct{}

// NewRandomCreditScorer creates the stub credit scorer
func NewRandomCreditScorer() CreditScorer {
	return &randomCreditScorer{}
}

// Score returns a uniform random score between 550 and 900 inclusive.
func (s *randomCreditScorer) Score(_ context.Context, _ string) (int, error) {
	return CreditScoreMin + rand.Intn(CreditScoreMax-CreditScoreMin+1), nil
}
