package sound

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fanmenu/internal/app/errors"
	"fanmenu/internal/config/logger"
	"fanmenu/internal/menu"
)

func Test_Player_Load(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "broken.wav")
	require.NoError(t, os.WriteFile(garbage, []byte("not a wave file"), 0644))

	tests := []struct {
		name  string
		cue   menu.Cue
		path  string
		error error
	}{
		{name: "synthesized tone", cue: menu.CueExpand, path: ToneURI(menu.CueExpand)},
		{name: "tone for another cue", cue: menu.CueFold, path: ToneURI(menu.CueSelect), error: errors.ErrUnsupportedSound},
		{name: "empty path", cue: menu.CueFold, path: "", error: errors.ErrSoundPathRequired},
		{name: "unsupported extension", cue: menu.CueFold, path: filepath.Join(dir, "fold.mp3"), error: errors.ErrUnsupportedSound},
		{name: "undecodable wave", cue: menu.CueFold, path: garbage, error: errors.ErrUnsupportedSound},
		{name: "missing file", cue: menu.CueSelect, path: filepath.Join(dir, "missing.wav"), error: os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			p := NewPlayerWithOutput(NewMockOutput(ctrl), logger.NewNopLogger())

			err := p.Load(tt.cue, tt.path)

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				assert.False(t, p.IsLoaded(tt.cue))

				return
			}

			assert.NoError(t, err)
			assert.True(t, p.IsLoaded(tt.cue))
		})
	}
}

func Test_Player_Play(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	output := NewMockOutput(ctrl)
	p := NewPlayerWithOutput(output, logger.NewNopLogger())

	assert.ErrorIs(t, p.Play(menu.CueSelect), errors.ErrSoundNotLoaded)

	require.NoError(t, p.Load(menu.CueSelect, ToneURI(menu.CueSelect)))

	output.EXPECT().Init(sampleRate, gomock.Any()).Return(nil).Times(1)
	output.EXPECT().Play(gomock.Any()).Times(2)

	assert.NoError(t, p.Play(menu.CueSelect))
	assert.NoError(t, p.Play(menu.CueSelect))

	p.Dispose(menu.CueSelect)
	assert.ErrorIs(t, p.Play(menu.CueSelect), errors.ErrSoundNotLoaded)

	output.EXPECT().Clear().Times(1)
	p.Close()
}

func Test_Player_SpeakerUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	output := NewMockOutput(ctrl)
	p := NewPlayerWithOutput(output, logger.NewNopLogger())

	require.NoError(t, p.Load(menu.CueFold, ToneURI(menu.CueFold)))

	output.EXPECT().Init(gomock.Any(), gomock.Any()).Return(stderrors.New("no device")).Times(1)

	assert.ErrorIs(t, p.Play(menu.CueFold), errors.ErrSpeakerUnavailable)
	assert.ErrorIs(t, p.Play(menu.CueFold), errors.ErrSpeakerUnavailable)

	p.Close()
}
