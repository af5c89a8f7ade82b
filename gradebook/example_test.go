// SPDX-License-Identifier: MIT

package gradebook_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/markgrid/gradebook"
)

func ExampleSheet_Average() {
	r, err := gradebook.DefaultSheet().Average()
	if err != nil {
		fmt.Println(err)
		return
	}
	_, _ = r.WriteTo(os.Stdout)

	// Output:
	// Student Average: [25.0, 29.25, 27.5, 31.25, 30.75]
	// Exam Average: [28.0, 26.4, 31.6, 29.0]
}

func ExampleAverageGrid_ragged() {
	_, err := gradebook.AverageGrid([][]int{{90, 80}, {70}})
	fmt.Println(errors.Is(err, gradebook.ErrShape))

	// Output:
	// true
}
