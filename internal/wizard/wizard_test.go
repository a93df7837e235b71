package wizard

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/puravida/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsOnBasicsWithDefaults(t *testing.T) {
	w := New()
	assert.Equal(t, StepBasics, w.Step())
	assertDefaults(t, w.Snapshot())
}

func assertDefaults(t *testing.T, p domain.Preferences) {
	t.Helper()
	assert.Empty(t, p.GuestName)
	assert.Equal(t, domain.DirectionPreWedding, p.Direction)
	assert.Equal(t, 3, p.Duration)
	assert.Equal(t, []domain.Region{domain.RegionAIDecide}, p.Regions.Values())
	assert.Equal(t, domain.BudgetModerate, p.Budget)
	assert.Equal(t, domain.PartyCouple, p.Party)
	assert.Empty(t, p.Vibes)
	assert.Empty(t, p.Activities)
}

func TestNext_BasicsGate(t *testing.T) {
	tests := []struct {
		name    string
		guest   string
		allowed bool
	}{
		{"empty", "", false},
		{"spaces", "   ", false},
		{"tabs and newlines", "\t\n", false},
		{"name", "Jane Doe", true},
		{"padded name", "  Jane  ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New()
			w.Preferences().SetGuestName(tt.guest)

			err := w.Next()
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, StepExperience, w.Step())
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, CodeGuestNameRequired, verr.Code)
			assert.Equal(t, StepBasics, w.Step())
		})
	}
}

func atExperience(t *testing.T) *Wizard {
	t.Helper()
	w := New()
	w.Preferences().SetGuestName("Jane")
	require.NoError(t, w.Next())
	return w
}

func TestNext_ExperienceGate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(p *domain.Preferences)
		allowed bool
	}{
		{"sentinel only", func(p *domain.Preferences) {}, true},
		{"everything empty", func(p *domain.Preferences) {
			p.ToggleRegion(domain.RegionOsa)
			p.ToggleRegion(domain.RegionOsa)
		}, false},
		{"empty regions with vibe", func(p *domain.Preferences) {
			p.ToggleRegion(domain.RegionOsa)
			p.ToggleRegion(domain.RegionOsa)
			p.ToggleVibe(domain.VibeLuxury)
		}, true},
		{"empty regions with activity", func(p *domain.Preferences) {
			p.ToggleRegion(domain.RegionOsa)
			p.ToggleRegion(domain.RegionOsa)
			p.ToggleActivity(domain.ActivitySurfing)
		}, true},
		{"concrete region", func(p *domain.Preferences) {
			p.ToggleRegion(domain.RegionMonteverde)
		}, true},
		{"vibe toggled off again", func(p *domain.Preferences) {
			p.ToggleRegion(domain.RegionOsa)
			p.ToggleRegion(domain.RegionOsa)
			p.ToggleVibe(domain.VibeLuxury)
			p.ToggleVibe(domain.VibeLuxury)
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := atExperience(t)
			tt.setup(w.Preferences())

			err := w.Next()
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, StepConfirm, w.Step())
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, CodePreferenceRequired, verr.Code)
			assert.Equal(t, StepExperience, verr.Step)
			assert.Equal(t, StepExperience, w.Step())
		})
	}
}

// TestExperienceGate_Property checks over random selections that the gate
// denies exactly when regions, vibes and activities are all empty.
func TestExperienceGate_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	regions := make([]domain.Region, 0, len(domain.RegionOptions))
	for _, o := range domain.RegionOptions {
		regions = append(regions, o.Value)
	}

	for trial := 0; trial < 300; trial++ {
		w := atExperience(t)
		p := w.Preferences()
		for i := rng.Intn(8); i > 0; i-- {
			switch rng.Intn(3) {
			case 0:
				require.NoError(t, p.ToggleRegion(regions[rng.Intn(len(regions))]))
			case 1:
				require.NoError(t, p.ToggleVibe(domain.VibeOptions[rng.Intn(2)].Value))
			case 2:
				require.NoError(t, p.ToggleActivity(domain.ActivityOptions[rng.Intn(2)].Value))
			}
		}

		allEmpty := p.Regions.IsEmpty() && len(p.Vibes) == 0 && len(p.Activities) == 0
		err := w.Next()
		if allEmpty {
			assert.ErrorIs(t, err, ErrValidation, "trial %d", trial)
		} else {
			assert.NoError(t, err, "trial %d", trial)
		}
	}
}

func TestNext_OnConfirm(t *testing.T) {
	w := atExperience(t)
	require.NoError(t, w.Next())
	assert.ErrorIs(t, w.Next(), ErrLastStep)
	assert.Equal(t, StepConfirm, w.Step())
}

func TestBack_KeepsData(t *testing.T) {
	w := atExperience(t)
	p := w.Preferences()
	require.NoError(t, p.ToggleVibe(domain.VibeAdventure))
	p.SetDuration(9)
	require.NoError(t, w.Next())

	w.Back()
	assert.Equal(t, StepExperience, w.Step())
	w.Back()
	assert.Equal(t, StepBasics, w.Step())
	w.Back()
	assert.Equal(t, StepBasics, w.Step())

	got := w.Snapshot()
	assert.Equal(t, "Jane", got.GuestName)
	assert.Equal(t, []domain.Vibe{domain.VibeAdventure}, got.Vibes)
	assert.Equal(t, 9, got.Duration)
}

func TestReset_FromEveryStep(t *testing.T) {
	for _, target := range []Step{StepBasics, StepExperience, StepConfirm} {
		t.Run(target.String(), func(t *testing.T) {
			w := New()
			p := w.Preferences()
			p.SetGuestName("Jane")
			p.SetDuration(12)
			require.NoError(t, p.SetBudget(domain.BudgetUltraLuxury))
			require.NoError(t, p.SetParty(domain.PartyFriends))
			require.NoError(t, p.SetDirection(domain.DirectionPostWedding))
			require.NoError(t, p.ToggleRegion(domain.RegionGuanacaste))
			require.NoError(t, p.ToggleActivity(domain.ActivityATV))
			for w.Step() < target {
				require.NoError(t, w.Next())
			}

			w.Reset()

			assert.Equal(t, StepBasics, w.Step())
			assertDefaults(t, w.Snapshot())
		})
	}
}

func TestReady_RechecksGates(t *testing.T) {
	w := atExperience(t)
	require.NoError(t, w.Next())
	w.Preferences().SetGuestName(" ")

	var verr *ValidationError
	require.ErrorAs(t, w.Ready(), &verr)
	assert.Equal(t, StepBasics, verr.Step)
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "basics", StepBasics.String())
	assert.Equal(t, "confirm", StepConfirm.String())
	assert.Equal(t, "step(9)", Step(9).String())
	assert.Equal(t, 2, StepExperience.Number())
}
