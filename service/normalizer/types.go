package normalizer

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Source is recorded in every recommendation's resource metadata.
const Source = "Azure Resource Manager"

// recommendationNamespace scopes the name-based recommendation ids.
var recommendationNamespace = uuid.MustParse("6f1c3a5e-2b7d-4e0a-9c61-4a8f0d2e7b13")

type normalizer struct {
	currency string
	logger   zerolog.Logger
}
