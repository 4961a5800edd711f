package console

import (
	"errors"
	"fmt"

	"bankmanager/internal/core"
)

func (c *Console) selectBanks() error {
	for {
		c.println("\nChoose a Bank (Enter the Bank ID): ")
		banks := c.service.ListBanks()
		if len(banks) == 0 {
			c.println("\t- No Banks Created -")
		}
		for _, b := range banks {
			c.printf("\t%s\n", b.Label)
		}
		c.println("\tEnter 0 to create one.\n\tEnter -1 to quit")

		choice, err := c.readInt("Selection: ")
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			if err := c.createBank(); err != nil {
				return err
			}
		case back:
			return nil
		default:
			if _, err := c.service.GetBank(choice); err != nil {
				c.println("\nUnrecognized Bank ID. Please retry selection.")
				continue
			}
			if err := c.bankMenu(choice); err != nil {
				return err
			}
		}
	}
}

func (c *Console) createBank() error {
	c.println("\nYou have chosen to create a Bank. Enter \"0\" to cancel.")
	for {
		name, ok, err := c.readName("Please enter name of Bank: ", "Bank")
		if err != nil {
			return err
		}
		if !ok {
			c.println("Bank not created.")
			return nil
		}

		if _, err := c.service.CreateBank(name); err != nil {
			c.println("Duplicate name of bank found. Please enter a distinguishable name.")
			continue
		}
		c.println("\nBank is successfully created.")
		return nil
	}
}

func (c *Console) bankMenu(bankID int) error {
	for {
		bank, err := c.service.GetBank(bankID)
		if err != nil {
			return nil
		}

		c.printf("\nVisit Branch (Enter the Branch Code): \n\t%s\n", bank.Label)
		c.println("\tEnter 0 to create one.\n" +
			"\tEnter 1 to remove this bank from database.\n" +
			"\tEnter 2 to rename this bank.\n" +
			"\tEnter -1 to reselect a bank.")

		choice, err := c.readInt("Selection: ")
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			err = c.createBranch(bankID)
		case 1:
			var removed bool
			removed, err = c.remove(fmt.Sprintf("[%d] %s", bank.ID, bank.Name), func() error {
				return c.service.RemoveBank(bankID)
			})
			if removed {
				return nil
			}
		case 2:
			err = c.renameBank(bankID)
		case back:
			return nil
		default:
			ref := core.BranchRef{BankID: bankID, BranchCode: choice}
			if _, lookupErr := c.service.GetBranch(ref); lookupErr != nil {
				c.println("\nUnrecognized Branch code. Please retry selection.")
				continue
			}
			err = c.branchMenu(ref)
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) createBranch(bankID int) error {
	c.println("\nCreate a new branch. Enter \"0\" to cancel.")
	for {
		name, ok, err := c.readName("Please enter name of Branch: ", "Branch")
		if err != nil {
			return err
		}
		if !ok {
			c.println("Branch not created.")
			return nil
		}

		address, ok, err := c.readAddress("Branch")
		if err != nil {
			return err
		}
		if !ok {
			c.println("Branch not created.")
			return nil
		}

		if _, err := c.service.CreateBranch(bankID, name, address); err != nil {
			c.println("Duplicate name of branch found. Please enter a distinguishable name.")
			continue
		}
		c.println("\nBranch is successfully created.")
		return nil
	}
}

func (c *Console) renameBank(bankID int) error {
	c.println("\nRename this bank. Enter \"0\" to cancel.")
	for {
		name, ok, err := c.readName("Please enter new name of Bank: ", "Bank")
		if err != nil {
			return err
		}
		if !ok {
			c.println("Bank not renamed.")
			return nil
		}

		if _, err := c.service.RenameBank(bankID, name); err != nil {
			c.println("Duplicate name of bank found. Please enter a distinguishable name.")
			continue
		}
		c.println("\nBank is successfully renamed.")
		return nil
	}
}

// remove asks for confirmation before running fn. It reports whether the
// entity is gone.
func (c *Console) remove(label string, fn func() error) (bool, error) {
	c.printf("\nAre you sure you want to remove %s from the application database "+
		"(once deleted, all data will be lost)?\n", label)
	ok, err := c.confirmed()
	if err != nil || !ok {
		return false, err
	}

	if err := fn(); err != nil {
		c.println("Removing error. Please contact developer.")
		return false, nil
	}
	c.printf("%s has been removed.\n", label)

	return true, nil
}

func (c *Console) branchMenu(ref core.BranchRef) error {
	for {
		branch, err := c.service.GetBranch(ref)
		if err != nil {
			return nil
		}

		c.printf("\nWelcome to the %s branch.\nBranch details:\n%s\n", branch.Name, branch.Label)
		c.println("Enter customer ID to select a customer.\n" +
			"Enter 0 to add a new customer.\n" +
			"Enter 1 to remove branch.\n" +
			"Enter 2 to edit branch details.\n" +
			"Enter -1 to reselect branch")

		choice, err := c.readInt("Selection: ")
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			err = c.addCustomer(ref)
		case 1:
			var removed bool
			removed, err = c.remove(fmt.Sprintf("[%d] %s", branch.Code, branch.Name), func() error {
				return c.service.RemoveBranch(ref)
			})
			if removed {
				return nil
			}
		case 2:
			err = c.editBranch(ref)
		case back:
			return nil
		default:
			cref := core.CustomerRef{BranchRef: ref, CustomerID: choice}
			if _, lookupErr := c.service.GetCustomer(cref); lookupErr != nil {
				c.println("\nUnrecognized customer ID. Please retry selection.")
				continue
			}
			err = c.customerMenu(cref)
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) addCustomer(ref core.BranchRef) error {
	c.println("\nAdd a new customer. Enter \"0\" to cancel.")
	name, ok, err := c.readName("Please enter customer's full name: ", "Customer")
	if err != nil {
		return err
	}
	if !ok {
		c.println("Customer not added")
		return nil
	}

	address, ok, err := c.readAddress("customer's")
	if err != nil {
		return err
	}
	if !ok {
		c.println("Customer not added")
		return nil
	}

	if _, err := c.service.AddCustomer(ref, name, address); err != nil {
		c.printf("Could not add %s.\n", name)
		return nil
	}
	c.printf("%s added.\n", name)

	return nil
}

// readDetails collects an optional new name and address. Blank input keeps
// the current value.
func (c *Console) readDetails(kind string) (core.DetailsUpdate, bool, error) {
	c.printf("\nEdit %s details. Leave a field blank to keep it. Enter \"0\" to cancel.\n", kind)

	var update core.DetailsUpdate
	for update.Name == nil {
		name, err := c.readLine("New name: ")
		if err != nil || name == cancel {
			return core.DetailsUpdate{}, false, err
		}
		if name == "" {
			break
		}
		if validate.Struct(nameInput{Name: name}) != nil {
			c.printf("%s name is invalid, please enter alphabets only.\n", kind)
			continue
		}
		update.Name = &name
	}

	line, err := c.readLine("New address (Street, City, State, Zip Code): ")
	if err != nil || line == cancel {
		return core.DetailsUpdate{}, false, err
	}
	if line != "" {
		address := core.ParseAddress(line)
		update.Address = &address
	}

	return update, update.Name != nil || update.Address != nil, nil
}

func (c *Console) editBranch(ref core.BranchRef) error {
	update, ok, err := c.readDetails("Branch")
	if err != nil {
		return err
	}
	if !ok {
		c.println("Branch not changed.")
		return nil
	}

	_, err = c.service.UpdateBranch(ref, update)
	switch {
	case errors.Is(err, core.ErrDuplicateName):
		c.println("Duplicate name of branch found. Branch not changed.")
	case err != nil:
		c.println("Branch not changed.")
	default:
		c.println("Branch details updated.")
	}

	return nil
}

func (c *Console) customerMenu(ref core.CustomerRef) error {
	for {
		customer, err := c.service.GetCustomer(ref)
		if err != nil {
			return nil
		}

		c.printf("\nHello %s!\nYour details:\n%s\n", customer.Name, customer.Label)
		c.println("Enter Account Number to manage funds.\n" +
			"Enter 0 to open a new account.\n" +
			"Enter 1 to close ALL accounts.\n" +
			"Enter 2 to edit your details.\n" +
			"Enter -1 to reselect customer")

		choice, err := c.readInt("Selection: ")
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			account, openErr := c.service.OpenAccount(ref)
			if openErr != nil {
				c.println("It seems you have the maximum number of accounts open.")
				continue
			}
			c.printf("Congratulations! You have created a new account with us!\n\t%s\n", account.Label)
		case 1:
			c.println("\nAre you sure you want to close all your accounts in this branch? " +
				"We will be sorry to see you go.")
			ok, confirmErr := c.confirmed()
			if confirmErr != nil {
				return confirmErr
			}
			if !ok {
				continue
			}
			if err := c.service.RemoveCustomer(ref); err != nil {
				c.println("Removing error. Please contact developer.")
				continue
			}
			c.printf("(%d) %s is no longer a customer of this branch.\n", customer.ID, customer.Name)
			return nil
		case 2:
			err = c.editCustomer(ref)
		case back:
			return nil
		default:
			aref := core.AccountRef{CustomerRef: ref, AccountNumber: choice}
			if _, lookupErr := c.service.GetAccount(aref); lookupErr != nil {
				c.println("\nUnrecognized account number. Please retry selection.")
				continue
			}
			err = c.accountMenu(aref)
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) editCustomer(ref core.CustomerRef) error {
	update, ok, err := c.readDetails("Customer")
	if err != nil {
		return err
	}
	if !ok {
		c.println("Details not changed.")
		return nil
	}

	if _, err := c.service.UpdateCustomer(ref, update); err != nil {
		c.println("Details not changed.")
		return nil
	}
	c.println("Details updated.")

	return nil
}
