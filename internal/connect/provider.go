package connect

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"memoir/internal/codes"
	"memoir/internal/models"
)

// Provider resolves a connection code to a read-only snapshot of the user
// who owns it. The snapshot is appended to the connected list; it is never
// merged into the current user's own record.
type Provider interface {
	Resolve(code string) (models.User, error)
}

// SimulatedProvider fabricates a plausible participant profile for any
// well-formed code. It stands in until a real directory service exists;
// the rest of the app only sees the Provider interface.
type SimulatedProvider struct {
	rng *rand.Rand
}

var simulatedNames = []string{
	"Margaret", "Harold", "Dorothy", "Walter", "Evelyn", "Arthur",
	"Florence", "Ernest", "Mildred", "Stanley",
}

func NewSimulatedProvider() *SimulatedProvider {
	return &SimulatedProvider{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Resolve returns a simulated participant for a valid code. Invalid codes
// fail the same way a real lookup miss would.
func (p *SimulatedProvider) Resolve(code string) (models.User, error) {
	if !codes.Valid(code) {
		return models.User{}, fmt.Errorf("no user found for code %q", code)
	}

	name := simulatedNames[p.rng.Intn(len(simulatedNames))]
	streak := p.rng.Intn(7)
	completed := streak + p.rng.Intn(20)
	lastActive := time.Now().AddDate(0, 0, -p.rng.Intn(3))

	return models.User{
		ID:               uuid.NewString(),
		Name:             name,
		Role:             models.RoleParticipant,
		ProfileCompleted: true,
		ConnectionCode:   code,
		Settings:         models.DefaultSettings(),
		Stats: models.UserStats{
			ActivitiesCompleted: completed,
			CurrentStreak:       streak,
			TotalScore:          completed * (50 + p.rng.Intn(100)),
			LastActivityDate:    &lastActive,
		},
	}, nil
}
