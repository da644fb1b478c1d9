package shipment_test

import (
	"strings"
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func testDetails() shipment.Details {
	return shipment.Details{
		PickupAddress:   "A",
		DeliveryAddress: "B",
		PackageType:     "parcel",
		Weight:          10,
		Dimensions:      "30x20x10",
		Type:            shipment.Domestic,
	}
}

func newTestShipment(t *testing.T, mutate ...func(*shipment.Details)) *shipment.Shipment {
	t.Helper()
	d := testDetails()
	for _, m := range mutate {
		m(&d)
	}
	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), d, shipment.Price{Base: 50, Total: 50}, testNow)
	require.NoError(t, err)
	return s
}

func advanceTo(t *testing.T, s *shipment.Shipment, target shipment.Status) kernel.UUID {
	t.Helper()
	driverID := kernel.NewUUID()
	at := testNow
	steps := []struct {
		status shipment.Status
		run    func() error
	}{
		{shipment.Assigned, func() error { return s.AssignDriver(driverID, at) }},
		{shipment.PickedUp, func() error { return s.MarkPickedUp("", at) }},
		{shipment.InTransit, func() error { return s.MarkInTransit("", at) }},
		{shipment.OutForDelivery, func() error { return s.MarkOutForDelivery("", at) }},
	}
	for _, step := range steps {
		if s.Status() == target {
			break
		}
		at = at.Add(time.Hour)
		require.NoError(t, step.run())
		require.Equal(t, step.status, s.Status())
	}
	require.Equal(t, target, s.Status())
	return driverID
}

func TestNewShipment(t *testing.T) {
	t.Run("should start pending without driver", func(t *testing.T) {
		s := newTestShipment(t)

		assert.Equal(t, shipment.Pending, s.Status())
		assert.Nil(t, s.DriverID())
		assert.Nil(t, s.ActualDelivery())
		assert.Equal(t, shipment.CODNotApplicable, s.CODStatus())
		assert.Equal(t, shipment.CustomsNotRequired, s.CustomsStatus())
		assert.Regexp(t, `^SHP[0-9A-F]{8}$`, s.Number())
		assert.Equal(t, testNow.AddDate(0, 0, 5), s.Snapshot().EstimatedDelivery)

		events := s.Events()
		require.Len(t, events, 1)
		assert.Equal(t, shipment.EventCreated, events[0].Kind)
		assert.False(t, events[0].Tracked())
	})

	t.Run("should add two days for heavy cargo", func(t *testing.T) {
		s := newTestShipment(t, func(d *shipment.Details) { d.Weight = 50.5 })

		assert.Equal(t, testNow.AddDate(0, 0, 7), s.Snapshot().EstimatedDelivery)
	})

	t.Run("should mark COD and customs as pending", func(t *testing.T) {
		s := newTestShipment(t, func(d *shipment.Details) {
			d.IsCOD = true
			d.CODAmount = 1250
			d.Type = shipment.International
			d.TransportMode = shipment.ModeAir
			d.Port = shipment.DelhiAirport
		})

		assert.Equal(t, shipment.CODPending, s.CODStatus())
		assert.Equal(t, shipment.CustomsPending, s.CustomsStatus())
	})

	t.Run("should derive number from id", func(t *testing.T) {
		id, err := kernel.UUIDFromString("0a1b2c3d-0000-4000-8000-000000000000")
		require.NoError(t, err)

		assert.Equal(t, "SHP0A1B2C3D", shipment.NumberFromID(id))
	})

	t.Run("should join every validation failure", func(t *testing.T) {
		d := shipment.Details{
			Weight:    -1,
			Type:      shipment.International,
			IsCOD:     true,
			CODAmount: 0,
		}

		_, err := shipment.NewShipment(kernel.NewUUID(), kernel.UUID{}, d, shipment.Price{}, testNow)

		require.Error(t, err)
		for _, fragment := range []string{"customer", "pickup address", "delivery address", "weight", "transport mode", "cod amount"} {
			assert.Contains(t, err.Error(), fragment)
		}
	})
}

func TestShipment_AssignDriver(t *testing.T) {
	t.Run("should advance pending to assigned", func(t *testing.T) {
		s := newTestShipment(t)
		driverID := kernel.NewUUID()

		require.NoError(t, s.AssignDriver(driverID, testNow.Add(time.Minute)))

		assert.Equal(t, shipment.Assigned, s.Status())
		assert.True(t, s.IsAssignedTo(driverID))
		assert.Equal(t, testNow.Add(time.Minute), s.UpdatedAt())
	})

	t.Run("should keep status when reassigning an advanced shipment", func(t *testing.T) {
		for _, status := range []shipment.Status{shipment.Assigned, shipment.PickedUp, shipment.InTransit, shipment.OutForDelivery} {
			s := newTestShipment(t)
			advanceTo(t, s, status)
			other := kernel.NewUUID()

			require.NoError(t, s.AssignDriver(other, testNow.Add(24*time.Hour)))
			require.NoError(t, s.AssignDriver(other, testNow.Add(25*time.Hour)))

			assert.Equal(t, status, s.Status())
			assert.True(t, s.IsAssignedTo(other))
		}
	})

	t.Run("should reject a cancelled shipment", func(t *testing.T) {
		s := newTestShipment(t)
		require.NoError(t, s.Cancel(testNow))

		err := s.AssignDriver(kernel.NewUUID(), testNow)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, shipment.Cancelled, s.Status())
		assert.Nil(t, s.DriverID())
	})
}

func TestShipment_HappyPath(t *testing.T) {
	s := newTestShipment(t)
	driverID := kernel.NewUUID()
	at := testNow

	require.NoError(t, s.AssignDriver(driverID, at))
	require.NoError(t, s.MarkPickedUp("fragile", at.Add(time.Hour)))
	require.NoError(t, s.MarkInTransit("", at.Add(2*time.Hour)))
	require.NoError(t, s.MarkOutForDelivery("", at.Add(3*time.Hour)))
	require.NoError(t, s.MarkDelivered(shipment.DeliveryProof{Signature: "sig.png"}, at.Add(4*time.Hour)))

	assert.Equal(t, shipment.Delivered, s.Status())
	require.NotNil(t, s.ActualDelivery())
	assert.Equal(t, at.Add(4*time.Hour), *s.ActualDelivery())
	assert.Equal(t, "sig.png", s.Snapshot().Signature)
	assert.Equal(t, at.Add(time.Hour), *s.Snapshot().PickupCompletedAt)

	var tracked []shipment.Event
	for _, e := range s.Events() {
		if e.Tracked() {
			tracked = append(tracked, e)
		}
	}
	require.Len(t, tracked, 4)
	assert.Equal(t, "Shipment picked up. Notes: fragile", tracked[0].Note)
	assert.Equal(t, "Shipment in transit. Notes: None", tracked[1].Note)
	assert.Equal(t, "Out for delivery. Notes: None", tracked[2].Note)
	assert.Equal(t, "Delivered successfully. Notes: None", tracked[3].Note)
	assert.Equal(t, shipment.Delivered, tracked[3].Status)

	s.ClearEvents()
	assert.Empty(t, s.Events())
}

func TestShipment_MarkFailed(t *testing.T) {
	t.Run("should fail an in transit shipment", func(t *testing.T) {
		s := newTestShipment(t)
		advanceTo(t, s, shipment.InTransit)

		require.NoError(t, s.MarkFailed(shipment.FailureRefusedDelivery, "customer refused", testNow.Add(48*time.Hour)))

		snap := s.Snapshot()
		assert.Equal(t, shipment.Failed, snap.Status)
		assert.Equal(t, shipment.FailureRefusedDelivery, snap.FailureReason)
		assert.Equal(t, "customer refused", snap.FailureNotes)
		assert.Nil(t, snap.ActualDelivery)
		require.NotNil(t, snap.DeliveryAttemptedAt)
		events := s.Events()
		assert.Equal(t, "Delivery failed: refused_delivery. Notes: customer refused", events[len(events)-1].Note)
	})

	t.Run("should reject unknown reason before touching state", func(t *testing.T) {
		s := newTestShipment(t)
		advanceTo(t, s, shipment.InTransit)

		err := s.MarkFailed("aliens", "", testNow)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, shipment.InTransit, s.Status())
	})

	t.Run("should reject failing a delivered shipment", func(t *testing.T) {
		s := newTestShipment(t)
		advanceTo(t, s, shipment.OutForDelivery)
		require.NoError(t, s.MarkDelivered(shipment.DeliveryProof{}, testNow.Add(48*time.Hour)))

		err := s.MarkFailed(shipment.FailureOther, "", testNow.Add(49*time.Hour))

		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "DELIVERED", transitionErr.Current)
		assert.Equal(t, "mark failed", transitionErr.Action)
		assert.NotNil(t, s.ActualDelivery())
	})
}

func TestShipment_Cancel(t *testing.T) {
	t.Run("should cancel pending", func(t *testing.T) {
		s := newTestShipment(t)

		require.NoError(t, s.Cancel(testNow))
		assert.Equal(t, shipment.Cancelled, s.Status())

		events := s.Events()
		require.NotEmpty(t, events)
		last := events[len(events)-1]
		assert.Equal(t, shipment.EventCancelled, last.Kind)
		assert.True(t, last.Tracked())
		assert.Equal(t, "Shipment cancelled", last.Note)
	})

	t.Run("should not cancel assigned", func(t *testing.T) {
		s := newTestShipment(t)
		advanceTo(t, s, shipment.Assigned)

		require.ErrorIs(t, s.Cancel(testNow), errs.ErrInvalidTransition)
		assert.Equal(t, shipment.Assigned, s.Status())
	})
}

func TestShipment_OverrideStatus(t *testing.T) {
	t.Run("should force any known status", func(t *testing.T) {
		s := newTestShipment(t)
		require.NoError(t, s.Cancel(testNow))

		require.NoError(t, s.OverrideStatus(shipment.InTransit, testNow.Add(time.Hour)))
		assert.Equal(t, shipment.InTransit, s.Status())

		events := s.Events()
		last := events[len(events)-1]
		assert.Equal(t, shipment.EventStatusOverridden, last.Kind)
		assert.True(t, last.Tracked())
		assert.Equal(t, "Status set to IN_TRANSIT by administrator", last.Note)
	})

	t.Run("should keep actual delivery in step with status", func(t *testing.T) {
		s := newTestShipment(t)

		require.NoError(t, s.OverrideStatus(shipment.Delivered, testNow.Add(time.Hour)))
		require.NotNil(t, s.ActualDelivery())

		require.NoError(t, s.OverrideStatus(shipment.OutForDelivery, testNow.Add(2*time.Hour)))
		assert.Nil(t, s.ActualDelivery())
	})

	t.Run("should clear failure metadata when leaving failed", func(t *testing.T) {
		s := newTestShipment(t)
		advanceTo(t, s, shipment.Assigned)
		require.NoError(t, s.MarkFailed(shipment.FailureWrongAddress, "typo", testNow.Add(time.Hour)))

		require.NoError(t, s.OverrideStatus(shipment.Assigned, testNow.Add(2*time.Hour)))

		assert.Empty(t, s.Snapshot().FailureReason)
		assert.Empty(t, s.Snapshot().FailureNotes)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		s := newTestShipment(t)

		err := s.OverrideStatus("TELEPORTED", testNow)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, shipment.Pending, s.Status())
	})
}

func TestShipment_CollectCOD(t *testing.T) {
	codShipment := func(t *testing.T) *shipment.Shipment {
		s := newTestShipment(t, func(d *shipment.Details) {
			d.IsCOD = true
			d.CODAmount = 499.99
		})
		advanceTo(t, s, shipment.OutForDelivery)
		return s
	}

	t.Run("should collect the exact amount", func(t *testing.T) {
		s := codShipment(t)

		require.NoError(t, s.CollectCOD(499.99, testNow.Add(48*time.Hour)))

		assert.Equal(t, shipment.CODCollected, s.CODStatus())
		assert.NotNil(t, s.Snapshot().CODCollectedAt)
	})

	t.Run("should reject any other amount", func(t *testing.T) {
		for _, amount := range []float64{0, 499.98, 500, 4999.9} {
			s := codShipment(t)

			err := s.CollectCOD(amount, testNow)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "amount mismatch")
			assert.Equal(t, shipment.CODPending, s.CODStatus())
		}
	})

	t.Run("should reject a mismatched amount as invalid in every status", func(t *testing.T) {
		for _, status := range shipment.Statuses() {
			t.Run(status.String(), func(t *testing.T) {
				s := newTestShipment(t, func(d *shipment.Details) {
					d.IsCOD = true
					d.CODAmount = 500
				})
				switch status {
				case shipment.Cancelled:
					require.NoError(t, s.Cancel(testNow))
				case shipment.Delivered:
					advanceTo(t, s, shipment.OutForDelivery)
					require.NoError(t, s.MarkDelivered(shipment.DeliveryProof{}, testNow.Add(24*time.Hour)))
				case shipment.Failed:
					advanceTo(t, s, shipment.Assigned)
					require.NoError(t, s.MarkFailed(shipment.FailureWrongAddress, "", testNow.Add(24*time.Hour)))
				default:
					advanceTo(t, s, status)
				}

				err := s.CollectCOD(499, testNow.Add(48*time.Hour))

				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.NotErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Equal(t, status, s.Status())
				assert.Equal(t, shipment.CODPending, s.CODStatus())
			})
		}
	})

	t.Run("should reject a second collection", func(t *testing.T) {
		s := codShipment(t)
		require.NoError(t, s.CollectCOD(499.99, testNow))

		require.ErrorIs(t, s.CollectCOD(499.99, testNow), errs.ErrValueIsInvalid)
	})

	t.Run("should reject non COD shipment", func(t *testing.T) {
		s := newTestShipment(t)
		advanceTo(t, s, shipment.OutForDelivery)

		err := s.CollectCOD(100, testNow)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "not COD")
	})

	t.Run("should reject collection before transit", func(t *testing.T) {
		s := newTestShipment(t, func(d *shipment.Details) {
			d.IsCOD = true
			d.CODAmount = 10
		})
		advanceTo(t, s, shipment.Assigned)

		require.ErrorIs(t, s.CollectCOD(10, testNow), errs.ErrInvalidTransition)
	})
}

func TestShipment_Customs(t *testing.T) {
	international := func(d *shipment.Details) {
		d.Type = shipment.International
		d.TransportMode = shipment.ModeSea
		d.Port = shipment.MundraPort
	}

	t.Run("should clear customs once", func(t *testing.T) {
		s := newTestShipment(t, international)
		advanceTo(t, s, shipment.PickedUp)

		require.NoError(t, s.ConfirmCustomsClearance("docs ok", testNow.Add(48*time.Hour)))
		assert.Equal(t, shipment.CustomsCleared, s.CustomsStatus())
		events := s.Events()
		assert.Equal(t, "Customs cleared. Notes: docs ok", events[len(events)-1].Note)

		require.ErrorIs(t, s.ConfirmCustomsClearance("", testNow), errs.ErrValueIsInvalid)
	})

	t.Run("should reject domestic shipment", func(t *testing.T) {
		s := newTestShipment(t)
		advanceTo(t, s, shipment.PickedUp)

		require.ErrorIs(t, s.ConfirmCustomsClearance("", testNow), errs.ErrValueIsInvalid)
	})
}

func TestShipment_ConfirmPortPickup(t *testing.T) {
	s := newTestShipment(t)
	advanceTo(t, s, shipment.Assigned)

	require.ErrorIs(t, s.ConfirmPortPickup("  ", "", testNow), errs.ErrValueIsRequired)
	require.NoError(t, s.ConfirmPortPickup("Chennai Port Gate 3", "", testNow.Add(time.Hour)))

	assert.Equal(t, shipment.PickedUp, s.Status())
	events := s.Events()
	last := events[len(events)-1]
	assert.Equal(t, "Chennai Port Gate 3", last.LocationName)
	assert.Equal(t, "Picked up from Chennai Port Gate 3. Notes: None", last.Note)
}

func TestShipment_ReportDelay(t *testing.T) {
	t.Run("should keep status and record latest report", func(t *testing.T) {
		s := newTestShipment(t)
		advanceTo(t, s, shipment.InTransit)

		require.NoError(t, s.ReportDelay(shipment.DelayTrafficJam, "", testNow.Add(30*time.Hour)))
		require.NoError(t, s.ReportDelay(shipment.DelayWeather, "storm", testNow.Add(31*time.Hour)))

		snap := s.Snapshot()
		assert.Equal(t, shipment.InTransit, snap.Status)
		assert.Equal(t, shipment.DelayWeather, snap.DelayReason)
		assert.Equal(t, "storm", snap.DelayNotes)
		assert.Equal(t, testNow.Add(31*time.Hour), *snap.DelayReportedAt)
	})

	t.Run("should reject pending and terminal shipments", func(t *testing.T) {
		s := newTestShipment(t)
		require.ErrorIs(t, s.ReportDelay(shipment.DelayOther, "", testNow), errs.ErrInvalidTransition)

		require.NoError(t, s.Cancel(testNow))
		require.ErrorIs(t, s.ReportDelay(shipment.DelayOther, "", testNow), errs.ErrInvalidTransition)
	})

	t.Run("should reject unknown reason", func(t *testing.T) {
		s := newTestShipment(t)
		advanceTo(t, s, shipment.InTransit)

		require.ErrorIs(t, s.ReportDelay("meteor", "", testNow), errs.ErrValueIsInvalid)
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("should round trip a snapshot", func(t *testing.T) {
		s := newTestShipment(t)
		advanceTo(t, s, shipment.OutForDelivery)

		restored, err := shipment.RestoreShipment(s.Snapshot())

		require.NoError(t, err)
		assert.Equal(t, s.Snapshot(), restored.Snapshot())
		assert.Empty(t, restored.Events())
	})

	t.Run("should reject delivered without actual delivery", func(t *testing.T) {
		snap := newTestShipment(t).Snapshot()
		snap.Status = shipment.Delivered

		_, err := shipment.RestoreShipment(snap)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject actual delivery on other statuses", func(t *testing.T) {
		snap := newTestShipment(t).Snapshot()
		delivered := testNow
		snap.ActualDelivery = &delivered

		_, err := shipment.RestoreShipment(snap)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject bad number", func(t *testing.T) {
		snap := newTestShipment(t).Snapshot()
		snap.Number = "X" + strings.Repeat("0", 8)

		_, err := shipment.RestoreShipment(snap)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "number")
	})
}

func TestShipment_Validate(t *testing.T) {
	var s *shipment.Shipment
	require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	require.ErrorIs(t, (&shipment.Shipment{}).Validate(), shipment.ErrShipmentIsNotConstructed)
}
