package pxreader

// Copyright 2015 Kerby Shedden

/*

Package pxreader reads PC-AXIS (.px) statistical data files, the
semicolon-delimited text format used by many national statistics
agencies to publish multi-dimensional tables.

A PC-AXIS file is a sequence of NAME=VALUE directives.  The HEADING
directive names the dimension whose categories become the columns of
the table, STUB lists the remaining (row) dimensions, each dimension's
categories are given by a VALUES("name") directive, and DATA holds the
cells in row-major order.  The file is parsed into a Cube, which pairs
every row of cells with its tuple of dimension categories, and the
Cube is flattened into an array of Series objects with one leading
column per dimension followed by one column per heading category.
Each column is converted to int64, float64 or string depending on
which type all of its values can be parsed as.

Package pxreader also includes the simple column-oriented data
container called a Series, and a CSV reader that places an
already-flat table into an array of Series objects using the same
column type conversion.  Both readers satisfy the StatfileReader
interface and can return the data by chunks of consecutive rows.

The corr subpackage computes correlation matrices of the numeric
columns of a flat table, conditional on the values of one or more
grouping columns.

*/
