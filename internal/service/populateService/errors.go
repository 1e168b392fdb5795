package populateService

import "errors"

var ErrNoAdminToken = errors.New("admin token could not be acquired")
