package appliance

import (
	"github.com/denisbrodbeck/machineid"
)

// ApplianceID retrieves the unique ID identifying this appliance, used
// as the topic segment on the command and log channels.
func ApplianceID() string {
	id, err := machineid.ID()
	if err != nil {
		panic(err)
	}
	return id
}
