package main

import (
	"fmt"
	"os"
)

// UserData holds a user record.
type UserData struct {
	Name string
	Age  uint8
}

// ValidateAge returns an error when the user's age is outside 18..120.
func ValidateAge(user UserData) error {
	switch {
	case user.Age < 18:
		return fmt.Errorf("user %s is under 18", user.Name)
	case user.Age > 120:
		return fmt.Errorf("user %s's age %d is not valid", user.Name, user.Age)
	}
	return nil
}

func main() {
	users := []UserData{
		{Name: "Alice", Age: 25},
		{Name: "Bob", Age: 15},
		{Name: "Charlie", Age: 130},
	}

	failed := false
	for _, u := range users {
		if err := ValidateAge(u); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
			continue
		}
		fmt.Printf("User %s has a valid age.\n", u.Name)
	}
	if failed {
		os.Exit(1)
	}
}
