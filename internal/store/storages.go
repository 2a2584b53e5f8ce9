package store

type Storages struct {
	SecretsStorage SecretsStorage
	SourceStorage  SourceStorage
}

func NewStorages() *Storages {
	return &Storages{
		SecretsStorage: NewSecretsFileStorage(),
		SourceStorage:  NewSourceFileStorage(),
	}
}
