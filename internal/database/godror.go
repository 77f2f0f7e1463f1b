package database

import (
	_ "github.com/godror/godror" // Oracle driver, registered as "godror"
)
