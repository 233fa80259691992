package credits

// startingCredits is granted to every new account.
const startingCredits = 3

func defaultAccount(userID string) Account {
	return Account{UserID: userID, Credits: startingCredits}
}
