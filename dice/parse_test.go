package dice_test

import (
	"testing"

	"github.com/katalvlaran/lvdice/dice"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    dice.Cluster
		wantErr error
	}{
		{name: "single set", expr: "3d6", want: dice.Cluster{{Count: 3, Faces: 6}}},
		{name: "implicit count", expr: "d20", want: dice.Cluster{{Count: 1, Faces: 20}}},
		{
			name: "cluster with blanks and capitals",
			expr: " 2D4 + 3d6 ",
			want: dice.Cluster{{Count: 2, Faces: 4}, {Count: 3, Faces: 6}},
		},
		{name: "empty", expr: "   ", wantErr: dice.ErrSyntax},
		{name: "missing faces", expr: "2d", wantErr: dice.ErrSyntax},
		{name: "modifier is not a set", expr: "2d6+3", wantErr: dice.ErrSyntax},
		{name: "dangling plus", expr: "2d6+", wantErr: dice.ErrSyntax},
		{name: "zero dice", expr: "0d6", wantErr: dice.ErrInvalidCount},
		{name: "zero faces", expr: "2d0", wantErr: dice.ErrInvalidFaces},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dice.Parse(tt.expr)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, dice.ErrInvalidParameter)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, "1d4+1d6", dice.MustParse("d4+d6").String())
	assert.Panics(t, func() { dice.MustParse("nope") })
}
