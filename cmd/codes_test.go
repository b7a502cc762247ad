package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/excat/internal/domain"
	domainmocks "github.com/mouse-blink/excat/internal/domain/mocks"
	m "github.com/mouse-blink/excat/internal/model"
)

func TestCodesCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRoot(t, mockWorkflow)

	mockWorkflow.On("Codes", mock.MatchedBy(func(args domain.CodesArgs) bool {
		return args.Root == m.Path("/src") &&
			args.Definitions == m.Path("src/Common/ErrorCodes.cpp") &&
			args.Limit == domain.SampleSize &&
			len(args.Overrides) == 7
	})).Return(nil).Once()

	cmd.SetArgs([]string{"codes", "-s", "/src"})
	require.NoError(t, cmd.Execute())
}

func TestCodesCmd_Flags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRoot(t, mockWorkflow)

	mockWorkflow.On("Codes", domain.CodesArgs{
		RegistryArgs: domain.RegistryArgs{
			Root:        "/src",
			Definitions: "defs/Codes.cpp",
			Overrides:   cfg.OverrideEntries(),
			Encoding:    "windows-1252",
		},
		Limit: 0,
	}).Return(nil).Once()

	cmd.SetArgs([]string{"codes", "-s", "/src", "-d", "defs/Codes.cpp", "--encoding", "windows-1252", "-n", "0"})
	require.NoError(t, cmd.Execute())
}

func TestCodesCmd_RequiresSourceDirectory(t *testing.T) {
	cmd, _ := newTestRoot(t, domainmocks.NewMockWorkflow(t))

	cmd.SetArgs([]string{"codes"})
	require.Error(t, cmd.Execute())
}
