// Command course-calendar writes the meeting schedule of a list of course sections
// to an iCalendar file.
package main

import "github.com/pfrederiksen/course-calendar/internal/cli"

func main() {
	cli.Execute()
}
