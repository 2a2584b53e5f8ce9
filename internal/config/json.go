package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	App struct {
		ObfuscationKey  string `json:"obfuscation_key"`
		PackageName     string `json:"package_name"`
		MakeInjectable  bool   `json:"make_injectable"`
		Transform       string `json:"transform"`
		TransformKey    string `json:"transform_key"`
		CopyToClipboard bool   `json:"copy_to_clipboard"`
	} `json:"app,omitempty"`

	Files struct {
		SecretsFile string `json:"secrets_file"`
		OutputDir   string `json:"output_dir"`
	} `json:"files,omitempty"`

	Identity struct {
		AppSignatures   []string `json:"app_signatures"`
		CertificatePath string   `json:"certificate"`
	} `json:"identity,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ObfuscationKey:  jsonCfg.App.ObfuscationKey,
			PackageName:     jsonCfg.App.PackageName,
			MakeInjectable:  jsonCfg.App.MakeInjectable,
			Transform:       jsonCfg.App.Transform,
			TransformKey:    jsonCfg.App.TransformKey,
			CopyToClipboard: jsonCfg.App.CopyToClipboard,
		},
		Files: Files{
			SecretsFile: jsonCfg.Files.SecretsFile,
			OutputDir:   jsonCfg.Files.OutputDir,
		},
		Identity: Identity{
			AppSignatures:   jsonCfg.Identity.AppSignatures,
			CertificatePath: jsonCfg.Identity.CertificatePath,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
