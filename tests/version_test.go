package tests

import (
	"testing"

	"github.com/flowsight/flowsight-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	s := newSuite(t)

	for name, c := range map[string]*neotest.ContractInvoker{
		"flow":      s.flow,
		"curation":  s.curation,
		"spotlight": s.spotlight,
		"relay":     s.relay,
	} {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, int64(common.Version), intReader(t, c, "version").Int64())
		})
	}
}
