package main

import "errors"

var ErrNotWatchable = errors.New("only local files can be watched")
