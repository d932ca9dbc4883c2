package repository

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

// compile-time checks that the mongo implementations satisfy their interfaces
var (
	_ ReviewRepository  = (*reviewRepository)(nil)
	_ MessageRepository = (*messageRepository)(nil)
	_ UserRepository    = (*userRepository)(nil)
)

func TestIsDuplicate(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	if !isDuplicate(dup) {
		t.Error("E11000 write error not recognized as duplicate")
	}

	if isDuplicate(errors.New("some other error")) {
		t.Error("arbitrary error recognized as duplicate")
	}
	if isDuplicate(nil) {
		t.Error("nil error recognized as duplicate")
	}
}
