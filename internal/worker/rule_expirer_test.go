//go:build unit

package worker_test

import (
	"context"
	"errors"
	"testing"

	"dynamic-pricing/internal/worker"
	workermock "dynamic-pricing/tests/mock/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRuleExpirer_RunOnce(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		setupMock func(m *workermock.MockRuleExpiry)
		want      int
		wantErr   bool
	}{
		{
			name: "nothing due",
			setupMock: func(m *workermock.MockRuleExpiry) {
				m.EXPECT().ExpireDue(gomock.Any(), 500).Return(0, nil)
			},
			want: 0,
		},
		{
			name: "drains full batches",
			setupMock: func(m *workermock.MockRuleExpiry) {
				gomock.InOrder(
					m.EXPECT().ExpireDue(gomock.Any(), 500).Return(500, nil),
					m.EXPECT().ExpireDue(gomock.Any(), 500).Return(500, nil),
					m.EXPECT().ExpireDue(gomock.Any(), 500).Return(12, nil),
				)
			},
			want: 1012,
		},
		{
			name: "error keeps the partial count",
			setupMock: func(m *workermock.MockRuleExpiry) {
				gomock.InOrder(
					m.EXPECT().ExpireDue(gomock.Any(), 500).Return(500, nil),
					m.EXPECT().ExpireDue(gomock.Any(), 500).Return(0, errors.New("deadlock detected")),
				)
			},
			want:    500,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rules := workermock.NewMockRuleExpiry(ctrl)
			tc.setupMock(rules)

			got, err := worker.NewRuleExpirer(rules).RunOnce(ctx)

			if tc.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
