// Copyright 2025 Binaek Sarkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package runtime

import (
	"fmt"

	"github.com/google/uuid"
)

// builtinBorrowItem creates a Loan artifact instance for the borrowed item
// and binds it back into kwargs as "loan", for the trigger event and any
// token templates that follow to reference.
func builtinBorrowItem(e *Engine, performer *Party, kwargs *Args) error {
	item, _ := kwargs.Get("item")
	props := NewArgs()
	props.Set("item", item)
	props.Set("borrower", performer)
	props.Set("isOverdue", false)

	loan, err := e.CreateArtifactInstance("Loan", fmt.Sprintf("loan-%s", uuid.NewString()[:6]), props)
	if err != nil {
		return err
	}
	kwargs.Set("loan", loan)
	return nil
}

// builtinReturnItem retires the Loan artifact instance named in kwargs.
func builtinReturnItem(e *Engine, performer *Party, kwargs *Args) error {
	loanVal, ok := kwargs.Get("loan")
	if !ok {
		return nil
	}
	loan, ok := loanVal.(*ArtifactInstance)
	if !ok {
		return nil
	}
	delete(e.artifacts, loan.InstanceID)
	return nil
}

// builtinFineBorrower creates a Fine artifact instance against the loan's
// borrower and binds it back into kwargs as "fine".
func builtinFineBorrower(e *Engine, performer *Party, kwargs *Args) error {
	loanVal, _ := kwargs.Get("loan")
	loan, ok := loanVal.(*ArtifactInstance)
	if !ok {
		return fmt.Errorf("fineBorrower requires a 'loan' argument")
	}
	borrower, _ := loan.Property("borrower")

	props := NewArgs()
	props.Set("borrower", borrower)
	props.Set("loan", loan)
	props.Set("amount", 500.0)
	props.Set("isPaid", false)

	fine, err := e.CreateArtifactInstance("Fine", fmt.Sprintf("fine-%s", uuid.NewString()[:6]), props)
	if err != nil {
		return err
	}
	kwargs.Set("fine", fine)
	return nil
}

// builtinPayFine marks the Fine artifact instance named in kwargs as paid.
func builtinPayFine(e *Engine, performer *Party, kwargs *Args) error {
	fineVal, _ := kwargs.Get("fine")
	fine, ok := fineVal.(*ArtifactInstance)
	if !ok {
		return fmt.Errorf("payFine requires a 'fine' argument")
	}
	fine.Properties.Set("isPaid", true)
	return nil
}
