package config

import (
	"github.com/go-yaml/yaml"
	"log"
	"os"
)

type openAI struct {
	APIKey string `yaml:"key"`
	Model  string `yaml:"model"`
}

type columnsConfig struct {
	TransactionLookup string `yaml:"transaction_lookup"`
	AccountLookup     string `yaml:"account_lookup"`
	Amount            string `yaml:"amount"`
}

type MasterConfig struct {
	TransactionsFile string        `yaml:"transactions_file"`
	AccountsFile     string        `yaml:"accounts_file"`
	Columns          columnsConfig `yaml:"columns"`
	OpenAI           openAI        `yaml:"openai"`
}

func InitConfig(file string) *MasterConfig {
	init := MasterConfig{}
	init.getConf(file)
	return &init
}

func (c *MasterConfig) getConf(file string) *MasterConfig {

	yamlFile, err := os.ReadFile(file)
	if err != nil {
		log.Printf("yamlFile.Get err   #%v ", err)
		return c
	}
	err = yaml.Unmarshal(yamlFile, c)
	if err != nil {
		log.Fatalf("Unmarshal: %v", err)
	}

	return c
}
