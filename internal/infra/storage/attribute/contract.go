package attribute

import (
	"github.com/m04kA/Truckify-BookingService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
