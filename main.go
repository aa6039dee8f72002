package main

import "github.com/samuhlo/diet-planner-cli/cmd/dietplan"

func main() {
	dietplan.Execute()
}
