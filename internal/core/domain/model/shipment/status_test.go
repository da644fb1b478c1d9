package shipment_test

import (
	"fmt"
	"testing"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("should accept every known status", func(t *testing.T) {
		for _, s := range shipment.Statuses() {
			parsed, err := shipment.ParseStatus(string(s))
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should be case insensitive", func(t *testing.T) {
		parsed, err := shipment.ParseStatus(" in_transit ")

		require.NoError(t, err)
		assert.Equal(t, shipment.InTransit, parsed)
	})

	t.Run("should list legal values on unknown status", func(t *testing.T) {
		_, err := shipment.ParseStatus("LOST")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		for _, s := range shipment.Statuses() {
			assert.Contains(t, err.Error(), string(s))
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := map[shipment.Status]bool{
		shipment.Delivered: true,
		shipment.Failed:    true,
		shipment.Cancelled: true,
	}

	for _, s := range shipment.Statuses() {
		assert.Equal(t, terminal[s], s.IsTerminal(), s.String())
	}
}

func TestStatus_Transitions(t *testing.T) {
	allowed := map[shipment.Action]map[shipment.Status]shipment.Status{
		shipment.ActionAssign: {
			shipment.Pending:        shipment.Assigned,
			shipment.Assigned:       shipment.Assigned,
			shipment.PickedUp:       shipment.PickedUp,
			shipment.InTransit:      shipment.InTransit,
			shipment.OutForDelivery: shipment.OutForDelivery,
		},
		shipment.ActionPickUp:         {shipment.Assigned: shipment.PickedUp},
		shipment.ActionStartTransit:   {shipment.PickedUp: shipment.InTransit},
		shipment.ActionOutForDelivery: {shipment.InTransit: shipment.OutForDelivery},
		shipment.ActionDeliver: {
			shipment.InTransit:      shipment.Delivered,
			shipment.OutForDelivery: shipment.Delivered,
		},
		shipment.ActionFail: {
			shipment.Pending:        shipment.Failed,
			shipment.Assigned:       shipment.Failed,
			shipment.PickedUp:       shipment.Failed,
			shipment.InTransit:      shipment.Failed,
			shipment.OutForDelivery: shipment.Failed,
		},
		shipment.ActionCancel: {shipment.Pending: shipment.Cancelled},
	}

	apply := func(s shipment.Status, a shipment.Action) (shipment.Status, error) {
		switch a {
		case shipment.ActionAssign:
			return s.Assign()
		case shipment.ActionPickUp:
			return s.PickUp()
		case shipment.ActionStartTransit:
			return s.StartTransit()
		case shipment.ActionOutForDelivery:
			return s.SendOutForDelivery()
		case shipment.ActionDeliver:
			return s.Deliver()
		case shipment.ActionFail:
			return s.Fail()
		case shipment.ActionCancel:
			return s.Cancel()
		}
		t.Fatalf("unexpected action %s", a)
		return "", nil
	}

	for _, action := range shipment.Actions() {
		for _, status := range shipment.Statuses() {
			t.Run(fmt.Sprintf("%s from %s", action, status), func(t *testing.T) {
				next, err := apply(status, action)

				if want, ok := allowed[action][status]; ok {
					require.NoError(t, err)
					assert.Equal(t, want, next)
					assert.True(t, status.Allows(action))
					return
				}

				var transitionErr *errs.InvalidTransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, status.String(), transitionErr.Current)
				assert.Equal(t, action.String(), transitionErr.Action)
				assert.Equal(t, shipment.Unknown, next)
				assert.False(t, status.Allows(action))
			})
		}
	}
}

func TestStatus_TerminalStatesHaveNoOutgoingTransitions(t *testing.T) {
	for _, status := range []shipment.Status{shipment.Delivered, shipment.Failed, shipment.Cancelled} {
		for _, action := range shipment.Actions() {
			assert.False(t, status.Allows(action), "%s from %s", action, status)
		}
	}
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, shipment.Pending.Validate())
	require.ErrorIs(t, shipment.Unknown.Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "UNKNOWN", shipment.Unknown.String())
}
