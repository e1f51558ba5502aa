package configs

import "errors"

// MachineConfig is the machine section of a bfk config file, e.g.
//
//	machine: {
//		tapeSize: 30000
//		compress: false
//		trace:    true
//	}
type MachineConfig struct {
	TapeSize int   `json:"tapeSize"`
	Compress *bool `json:"compress"`
	Trace    bool  `json:"trace"`
}

const machineSchema = `
machine?: {
	tapeSize?: int & >0
	compress?: bool
	trace?:    bool
}
`

// LoadMachine reads the machine config from the first file that
// defines one. Missing files are an error; a file without a machine
// section yields the zero config.
func LoadMachine(filePaths []string) (MachineConfig, error) {
	var config MachineConfig
	if len(filePaths) == 0 {
		return config, nil
	}
	loader := NewLoader(filePaths, machineSchema)
	err := loader.AssignFirst("machine", &config)
	if errors.Is(err, ErrValueNotFound) {
		return config, nil
	}
	return config, err
}
