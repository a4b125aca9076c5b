package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayTechName_KnownTerms(t *testing.T) {
	assert.Equal(t, "TypeScript", DisplayTechName("typescript"))
	assert.Equal(t, "gRPC", DisplayTechName("grpc"))
	assert.Equal(t, "CI/CD", DisplayTechName("ci/cd"))
	assert.Equal(t, "Node.js", DisplayTechName("node.js"))
	assert.Equal(t, "dbt", DisplayTechName("DBT"))
}

func TestDisplayTechName_UnknownTermPassesThrough(t *testing.T) {
	assert.Equal(t, "event sourcing", DisplayTechName("event sourcing"))
	assert.Equal(t, "Elixir", DisplayTechName(" Elixir "))
}
