package console

import (
	goerrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abgdnv/inventory/internal/inventory/category"
	"github.com/abgdnv/inventory/internal/inventory/errors"
	"github.com/abgdnv/inventory/internal/inventory/query"
	"github.com/abgdnv/inventory/internal/inventory/service"
)

func (s *Session) addItem() error {
	var item service.ItemDto
	for {
		s.printCategories()
		line, err := s.prompt("Select product category to add: ")
		if err != nil {
			return err
		}
		index, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && category.IsValid(index) {
			item.Category = index
			break
		}
		s.clear()
		s.println("Invalid option selected. Please try again.")
	}

	s.println("Please enter item details")
	var err error
	if item.Barcode, err = s.prompt("Barcode: "); err != nil {
		return err
	}
	if item.Name, err = s.prompt("Name: "); err != nil {
		return err
	}
	if item.BestBeforeDate, err = s.prompt("Best Before Date (dd-mm-yyyy): "); err != nil {
		return err
	}
	if item.Price, err = s.promptFloat("Price: ", 0, false); err != nil {
		return err
	}
	if item.Quantity, err = s.promptInt("Quantity: ", 0, false); err != nil {
		return err
	}

	added, err := s.service.Add(item)
	if err != nil {
		return fmt.Errorf("add item: %w", err)
	}
	s.clear()
	s.printf("Item Added: %s(%s)\n\n", added.Name, added.Barcode)
	return nil
}

func (s *Session) listItems() {
	s.printTable(s.service.FindAll())
	s.println()
	s.printValuation(s.service.Valuation())
	s.println()
}

// findItem asks for a search mode and term and shows the result.
// It returns nil without error when the operator's search found nothing.
func (s *Session) findItem() (*service.Match, error) {
	s.println("1. Find by Barcode")
	s.println("2. Find by Name")
	s.println("3. Find by Expression")
	choice, err := s.prompt("Find by: ")
	if err != nil {
		return nil, err
	}
	mode, err := query.ParseMode(choice)
	if err != nil {
		s.logger.Debug("Unknown search mode", "choice", choice)
		s.clear()
		s.println("Invalid choice, please try again...")
		s.println()
		return nil, nil
	}

	term, err := s.prompt(fmt.Sprintf("Enter %s: ", mode.Field()))
	if err != nil {
		return nil, err
	}
	s.clear()

	match, err := s.service.Find(mode, term)
	switch {
	case err == nil:
		s.printTable([]service.ItemDto{match.Item})
		s.println()
		return match, nil
	case goerrors.Is(err, errors.ErrItemNotFound):
		s.printf("No item found with %s: %s\n\n", mode.Field(), term)
		return nil, nil
	case goerrors.Is(err, errors.ErrInvalidExpression):
		s.printf("Invalid expression: %s\n\n", strings.TrimPrefix(err.Error(), errors.ErrInvalidExpression.Error()+": "))
		return nil, nil
	default:
		return nil, fmt.Errorf("find item: %w", err)
	}
}

func (s *Session) editItem() error {
	s.println("First, find item to edit...")
	match, err := s.findItem()
	if err != nil || match == nil {
		return err
	}

	current := match.Item
	var edit service.EditDto
	s.println("Please enter new item details..")
	s.printf("Press enter to keep a value, enter %s to clear a text field.\n", clearField)
	if edit.Name, err = s.promptText(fmt.Sprintf("Name (%s): ", current.Name), current.Name); err != nil {
		return err
	}
	if edit.BestBeforeDate, err = s.promptText(fmt.Sprintf("Best Before (%s): ", current.BestBeforeDate), current.BestBeforeDate); err != nil {
		return err
	}
	if edit.Price, err = s.promptFloat(fmt.Sprintf("Price (%s): ", formatPrice(current.Price)), current.Price, true); err != nil {
		return err
	}
	if edit.Quantity, err = s.promptInt(fmt.Sprintf("Quantity (%d): ", current.Quantity), current.Quantity, true); err != nil {
		return err
	}

	updated, err := s.service.Edit(match.Handle, edit)
	if err != nil {
		return fmt.Errorf("edit item: %w", err)
	}
	s.clear()
	s.printTable([]service.ItemDto{*updated})
	s.println()
	s.println("Item Updated")
	s.println()
	return nil
}

func (s *Session) removeItem() error {
	s.println("Find item to delete...")
	match, err := s.findItem()
	if err != nil || match == nil {
		return err
	}
	if err := s.service.Remove(match.Handle); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	s.println("Item Removed")
	s.println()
	return nil
}
