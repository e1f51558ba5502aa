package cmds

var defaultExecutor = NewExecutor()

func Define(name string, command *Command) {
	defaultExecutor.Define(name, command)
}

func Execute(args []string) error {
	return defaultExecutor.Execute(args)
}

func PrintUsage() {
	defaultExecutor.PrintUsage()
}
