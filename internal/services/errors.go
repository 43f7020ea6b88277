package services

import (
	"github.com/pkg/errors"

	"wealthplanner/internal/dao"
)

var (
	// ErrSimulationNotFound is returned when the referenced simulation does not exist
	ErrSimulationNotFound = errors.New("simulation not found")

	// ErrRecordNotFound is returned when an allocation, movement or insurance does not exist
	ErrRecordNotFound = errors.New("record not found")
)

// translate maps data-layer misses onto the service sentinel notFound and
// annotates everything else with msg.
func translate(err error, notFound error, msg string) error {
	if errors.Is(err, dao.ErrNotFound) {
		return errors.Wrap(notFound, msg)
	}
	return errors.Wrap(err, msg)
}
