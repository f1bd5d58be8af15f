package dictionary

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeTranslations(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		incoming string
		want     string
	}{
		{name: "empty existing", existing: "", incoming: "house", want: "house"},
		{name: "trim and sort", existing: "", incoming: " zeta ,alpha,  mid ", want: "alpha,mid,zeta"},
		{name: "exact duplicate", existing: "house", incoming: "house", want: "house"},
		{name: "stored spelling wins", existing: "house", incoming: "home, House", want: "home,house"},
		{name: "duplicates inside incoming", existing: "", incoming: "b,a,b,a", want: "a,b"},
		{name: "empty tokens dropped", existing: "a,,", incoming: " , b", want: "a,b"},
		{name: "byte-wise order", existing: "b", incoming: "B2,a", want: "B2,a,b"},
		{name: "case variants in one set", existing: "", incoming: "Sun, sun", want: "sun"},
		{name: "case variants reversed", existing: "", incoming: "sun, Sun", want: "sun"},
		{name: "stored variant kept", existing: "Sun", incoming: "sun, SUN", want: "Sun"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeTranslations(tt.existing, tt.incoming))
		})
	}
}

func TestMergeTranslations_NoItemCap(t *testing.T) {
	var words []string
	for i := 0; i < 120; i++ {
		words = append(words, fmt.Sprintf("w%03d", i))
	}
	got := MergeTranslations(strings.Join(words[:60], ","), strings.Join(words[60:], ","))
	assert.Len(t, SplitTranslations(got), 120)
}

func TestSplitTranslations(t *testing.T) {
	assert.Equal(t, []string{"home", "house"}, SplitTranslations(" home , house,"))
	assert.Empty(t, SplitTranslations(" , ,"))
}
