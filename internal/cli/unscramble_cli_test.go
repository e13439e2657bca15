package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/at-ishikawa/wordsolver/internal/dictionary"
	mock_cli "github.com/at-ishikawa/wordsolver/internal/mocks/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUnscrambleCLI_Session(t *testing.T) {
	tests := []struct {
		name       string
		stdin      string
		format     Format
		setupMock  func(*mock_cli.MockUnscrambler)
		wantErr    error
		wantStdout string
	}{
		{
			name:  "prints each match on its own line",
			stdin: "tinsel\n",
			setupMock: func(m *mock_cli.MockUnscrambler) {
				m.EXPECT().Unscramble("tinsel").Return([]string{"listen", "silent", "enlist"})
			},
			wantStdout: "Next word: listen\nsilent\nenlist\n",
		},
		{
			name:  "no matches",
			stdin: "qzx\n",
			setupMock: func(m *mock_cli.MockUnscrambler) {
				m.EXPECT().Unscramble("qzx").Return(nil)
			},
			wantStdout: "Next word: No matches\n",
		},
		{
			name:   "yaml format",
			stdin:  "act\n",
			format: FormatYAML,
			setupMock: func(m *mock_cli.MockUnscrambler) {
				m.EXPECT().Unscramble("act").Return([]string{"cat", "act"})
			},
			wantStdout: "Next word: input: act\nmatches:\n  - cat\n  - act\n",
		},
		{
			name:   "yaml format without matches",
			stdin:  "qzx\n",
			format: FormatYAML,
			setupMock: func(m *mock_cli.MockUnscrambler) {
				m.EXPECT().Unscramble("qzx").Return(nil)
			},
			wantStdout: "Next word: input: qzx\nmatches: []\n",
		},
		{
			name:       "empty line ends the loop",
			stdin:      "\n",
			setupMock:  func(m *mock_cli.MockUnscrambler) {},
			wantErr:    errEnd,
			wantStdout: "Next word: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			unscrambler := mock_cli.NewMockUnscrambler(ctrl)
			tt.setupMock(unscrambler)

			format := tt.format
			if format == "" {
				format = FormatText
			}
			var stdout bytes.Buffer
			cli := NewUnscrambleCLI(unscrambler, strings.NewReader(tt.stdin), &stdout, format)

			err := cli.Session(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantStdout, stdout.String())
		})
	}
}

func TestUnscrambleCLI_Run(t *testing.T) {
	index, err := dictionary.New(strings.NewReader("cat act tac banana"))
	require.NoError(t, err)

	var stdout bytes.Buffer
	cli := NewUnscrambleCLI(index, strings.NewReader("tca\nnabana\n\nignored\n"), &stdout, FormatText)

	require.NoError(t, cli.Run(context.Background(), cli))

	lines := strings.Split(stdout.String(), "\n")
	require.Len(t, lines, 5)
	assert.ElementsMatch(t, []string{"cat", "act", "tac"}, []string{
		strings.TrimPrefix(lines[0], "Next word: "), lines[1], lines[2],
	})
	assert.Equal(t, "Next word: banana", lines[3])
	assert.Equal(t, "Next word: ", lines[4])
}
