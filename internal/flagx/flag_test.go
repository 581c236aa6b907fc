package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-a", "http://x", "-z", "nope", "-t", "30"}
	got := FilterArgs(args, []string{"-a", "-t"})
	require.Equal(t, []string{"-a", "http://x", "-t", "30"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.json", "-a=http://x", "--other=1"}
	got := FilterArgs(args, []string{"--config", "-a"})
	require.Equal(t, []string{"--config=conf.json", "-a=http://x"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	args := []string{"-v", "-a", "-t", "5"}
	got := FilterArgs(args, []string{"-a"})
	// -a is kept even though the next token is another flag
	require.Equal(t, []string{"-a"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	require.Empty(t, FilterArgs(nil, []string{"-a"}))
	require.Empty(t, FilterArgs([]string{"-x", "1"}, []string{"-a"}))
}

func TestJsonConfigFlags(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"app", "-c", "conf.json", "-a", "http://x"}
	require.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"app", "-config=other.json"}
	require.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"app", "-a", "http://x"}
	require.Equal(t, "", JsonConfigFlags())
}
