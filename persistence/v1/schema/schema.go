package schema

const createSchema = `CREATE TABLE storage (k VARCHAR(64) PRIMARY KEY, v TEXT)`

const dropSchema = `DROP TABLE storage`
