package console

import (
	"errors"

	"bankmanager/internal/core"
)

func (c *Console) accountMenu(ref core.AccountRef) error {
	for {
		account, err := c.service.GetAccount(ref)
		if err != nil {
			return nil
		}

		c.printf("\nManaging %s\n", account.Label)
		c.println("Enter 0 to deposit money into account.\n" +
			"Enter 1 to withdraw money from account.\n" +
			"Enter 2 to transfer money within this branch.\n" +
			"Enter 3 to close account.\n" +
			"Enter -1 to reselect account")

		choice, err := c.readInt("Selection: ")
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			err = c.deposit(ref)
		case 1:
			err = c.withdraw(ref, account)
		case 2:
			err = c.transfer(ref, account)
		case 3:
			var closed bool
			closed, err = c.closeAccount(ref)
			if closed {
				return nil
			}
		case back:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) deposit(ref core.AccountRef) error {
	c.printf("Depositing into account %d\nEnter 0 to cancel\nHow much money would you like to deposit?\n",
		ref.AccountNumber)

	amount, ok, err := c.readAmount()
	if err != nil {
		return err
	}
	if !ok {
		c.println("Deposit cancelled")
		return nil
	}

	if _, err := c.service.Deposit(ref, amount); err != nil {
		c.println("Deposit failed.")
		return nil
	}
	c.printf("Deposited %s into %d.\n", core.FormatMoney(amount), ref.AccountNumber)

	return nil
}

func (c *Console) withdraw(ref core.AccountRef, account core.AccountView) error {
	c.printf("Withdrawing from account %d. Enter 0 to cancel\nBalance: %s\nHow much money would you like to withdraw?\n",
		ref.AccountNumber, core.FormatMoney(account.Balance))

	for {
		amount, ok, err := c.readAmount()
		if err != nil {
			return err
		}
		if !ok {
			c.println("Withdrawal cancelled")
			return nil
		}

		updated, err := c.service.Withdraw(ref, amount)
		if errors.Is(err, core.ErrInsufficientFunds) {
			c.printf("Insufficient funds.\nBalance: %s\n", core.FormatMoney(account.Balance))
			continue
		}
		if err != nil {
			c.println("Withdrawal failed.")
			return nil
		}
		c.printf("Withdrew %s from %d.\nBalance: %s\n",
			core.FormatMoney(amount), ref.AccountNumber, core.FormatMoney(updated.Balance))

		return nil
	}
}

// transfer moves funds to another account of the same branch, which may
// belong to the same customer.
func (c *Console) transfer(from core.AccountRef, account core.AccountView) error {
	branch, err := c.service.GetBranch(from.BranchRef)
	if err != nil {
		return nil
	}
	c.printf("Transferring funds from account %d. Enter 0 to cancel\nBalance: %s\n%s\nEnter recipient customer ID.\n",
		from.AccountNumber, core.FormatMoney(account.Balance), branch.Label)

	var recipient core.CustomerView
	for {
		id, err := c.readInt("Selection: ")
		if err != nil {
			return err
		}
		if id == 0 {
			return nil
		}

		recipient, err = c.service.GetCustomer(core.CustomerRef{BranchRef: from.BranchRef, CustomerID: id})
		if err != nil {
			c.println("\nUnrecognized customer ID. Please retry selection.")
			continue
		}
		if len(recipient.Accounts) == 0 {
			c.println("This customer has no accounts open.")
			continue
		}
		break
	}

	c.printf("\n%s\nChoose an account from the recipient's list. Enter 0 to quit.\n", recipient.Label)
	to := core.AccountRef{CustomerRef: core.CustomerRef{BranchRef: from.BranchRef, CustomerID: recipient.ID}}
	var target core.AccountView
	for {
		number, err := c.readInt("Selection: ")
		if err != nil {
			return err
		}
		if number == 0 {
			return nil
		}

		to.AccountNumber = number
		target, err = c.service.GetAccount(to)
		if err == nil {
			break
		}
		c.println("\nUnrecognized account number. Please retry selection.")
	}

	c.printf("Transferring to (%d) %s (%d). Enter 0 to cancel\nBalance: %s\nHow much money would you like to transfer?\n",
		recipient.ID, recipient.Name, target.Number, core.FormatMoney(target.Balance))
	for {
		amount, ok, err := c.readAmount()
		if err != nil {
			return err
		}
		if !ok {
			c.println("Transfer cancelled")
			return nil
		}

		result, err := c.service.Transfer(from, to, amount)
		switch {
		case errors.Is(err, core.ErrInsufficientFunds):
			c.printf("Insufficient funds.\nBalance: %s\n\n", core.FormatMoney(account.Balance))
			continue
		case errors.Is(err, core.ErrSameAccount):
			c.println("Cannot transfer to the same account.")
			return nil
		case err != nil:
			c.println("Transfer failed.")
			return nil
		}

		c.printf("Transferred %s from %d to (%d) %s (%d).\nBalance: %s\n",
			core.FormatMoney(amount), from.AccountNumber, recipient.ID, recipient.Name, to.AccountNumber,
			core.FormatMoney(result.From.Balance))

		return nil
	}
}

// closeAccount reports whether the account was closed.
func (c *Console) closeAccount(ref core.AccountRef) (bool, error) {
	c.println("\nAre you sure you want to close this account (ensure you have withdrawn all your funds)?")
	ok, err := c.confirmed()
	if err != nil || !ok {
		return false, err
	}

	err = c.service.CloseAccount(ref)
	if errors.Is(err, core.ErrNonZeroBalance) {
		account, _ := c.service.GetAccount(ref)
		c.printf("Please empty funds before continuing\nBalance: %s\n", core.FormatMoney(account.Balance))
		return false, nil
	}
	if err != nil {
		c.println("Removing error. Please contact developer.")
		return false, nil
	}
	c.printf("%d has been removed.\n", ref.AccountNumber)

	return true, nil
}
