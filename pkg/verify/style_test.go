package verify

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

const validGuide = `
<h2>Colorado at a Glance</h2>
<p>Colorado rewards travelers year round, and Colorado's mountain towns are busiest in winter.</p>
<h2>Must-See Attractions</h2>
<ul>
<li>Rocky Mountain National Park</li>
<li>Garden of the Gods</li>
</ul>
<h2>Where to Stay</h2>
<p>Book a historic hotel in Denver or a ski lodge near Breckenridge.</p>
<h2>Best Time to Visit</h2>
<p>Summer suits hikers; powder chasers should come to Colorado between December and March.</p>
`

func TestVerifyTravelStyleValidGuide(t *testing.T) {
	check := VerifyTravelStyle(validGuide, "Colorado")

	assert.Equal(t, true, check.IsValid)
	assert.Equal(t, 0, len(check.Issues))
}

func TestVerifyTravelStyleReportsAllMisses(t *testing.T) {
	check := VerifyTravelStyle("<p>no travel content</p>", "Colorado")

	assert.Equal(t, false, check.IsValid)
	assert.Equal(t, 4, len(check.Issues))

	joined := strings.Join(check.Issues, "; ")
	assert.Equal(t, true, strings.Contains(joined, "Colorado"))
	assert.Equal(t, true, strings.Contains(joined, "attractions"))
	assert.Equal(t, true, strings.Contains(joined, "lodging"))
	assert.Equal(t, true, strings.Contains(joined, "seasonal"))
}

func TestVerifyTravelStyleSubjectFrequency(t *testing.T) {
	content := `
<p>Colorado is great. Colorado has mountains.</p>
<h2>Must-See Attractions</h2>
<ul><li>Pikes Peak</li></ul>
<p>Stay at a mountain lodge. Visit in summer.</p>
`

	check := VerifyTravelStyle(content, "Colorado")

	assert.Equal(t, false, check.IsValid)
	assert.Equal(t, 1, len(check.Issues))
	assert.Equal(t, true, strings.Contains(check.Issues[0], "mentioned 2 times"))
}

func TestVerifyTravelStyleAttractionsInHeading(t *testing.T) {
	content := `
<p>Colorado, Colorado, Colorado.</p>
<h3>Top sights worth your time</h3>
<p>Stay at the Stanley Hotel. Winter is peak season.</p>
`

	check := VerifyTravelStyle(content, "Colorado")

	assert.Equal(t, true, check.IsValid)
}

func TestVerifyTravelStyleChecksAreIndependent(t *testing.T) {
	// Lodging present, everything else missing.
	content := `<p>Stay at a hotel.</p>`

	check := VerifyTravelStyle(content, "Colorado")

	assert.Equal(t, false, check.IsValid)
	assert.Equal(t, 3, len(check.Issues))
}
